// Package seed loads the sample Saharanpur data used for demos and local
// development.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"community_portal/internal/models"
)

const adminEmail = "admin@saharanpur.gov.in"

// ErrAlreadySeeded is returned when the sample admin account already exists.
var ErrAlreadySeeded = errors.New("database already seeded")

func ptr[T any](v T) *T { return &v }

// Run inserts the sample data in one transaction. Dates are relative to now.
func Run(ctx context.Context, db *gorm.DB, now time.Time) error {
	var existing int64
	if err := db.WithContext(ctx).Model(&models.User{}).Where("email = ?", adminEmail).Count(&existing).Error; err != nil {
		return fmt.Errorf("check seed marker: %w", err)
	}
	if existing > 0 {
		return ErrAlreadySeeded
	}

	day := 24 * time.Hour
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		admin := models.User{Name: "Admin User", Email: adminEmail, Role: models.RoleAdmin, Verified: true}
		rajesh := models.User{Name: "Rajesh Kumar", Email: "rajesh@gmail.com", Phone: "+91-9876543210", Role: models.RoleCitizen, Verified: true}
		priya := models.User{Name: "Priya Sharma", Email: "priya@gmail.com", Phone: "+91-9876543211", Role: models.RoleCitizen, Verified: true}
		vendor := models.User{Name: "Local Vendor", Email: "vendor@business.com", Phone: "+91-9876543212", Role: models.RoleVendor, Verified: true}
		users := []*models.User{&admin, &rajesh, &priya, &vendor}
		if err := tx.Create(users).Error; err != nil {
			return fmt.Errorf("seed users: %w", err)
		}

		announcements := []models.Announcement{
			{
				Title:       "Water Supply Maintenance Notice",
				Content:     "Water supply will be temporarily suspended from 10 AM to 4 PM on Sunday for maintenance work in the Civil Lines area. Please store adequate water for the day.",
				Category:    "Utilities",
				Priority:    models.PriorityHigh,
				AuthorID:    admin.ID,
				IsPublished: true,
				ValidUntil:  ptr(now.Add(7 * day)),
			},
			{
				Title:       "Street Light Repair Completed",
				Content:     "All street lights in Nehru Park area have been repaired and are now functional. Thank you for your patience.",
				Category:    "Infrastructure",
				Priority:    models.PriorityMedium,
				AuthorID:    admin.ID,
				IsPublished: true,
			},
			{
				Title:       "Community Cleanliness Drive",
				Content:     "Join us for a community cleanliness drive this Saturday at 6 AM. Meeting point: Gandhi Park. Bring your own cleaning supplies.",
				Category:    "Environment",
				Priority:    models.PriorityMedium,
				AuthorID:    admin.ID,
				IsPublished: true,
			},
		}

		diwali := now.Add(10 * day)
		workshop := now.Add(5 * day)
		events := []models.Event{
			{
				Title:        "Diwali Community Celebration",
				Description:  "Join us for a grand Diwali celebration with cultural programs, food stalls, and fireworks display. All families welcome!",
				Location:     "Gandhi Park, Civil Lines",
				StartDate:    diwali,
				EndDate:      ptr(diwali.Add(6 * time.Hour)),
				Category:     "Cultural",
				MaxAttendees: ptr(500),
				OrganizerID:  admin.ID,
				IsPublished:  true,
			},
			{
				Title:        "Health Awareness Workshop",
				Description:  "Free health checkup and awareness session by qualified doctors. Topics include diabetes, blood pressure, and general wellness.",
				Location:     "Community Center, Model Town",
				StartDate:    workshop,
				EndDate:      ptr(workshop.Add(3 * time.Hour)),
				Category:     "Health",
				MaxAttendees: ptr(100),
				OrganizerID:  rajesh.ID,
				IsPublished:  true,
			},
		}

		issues := []models.Issue{
			{
				Title:       "Pothole on Main Road",
				Description: "Large pothole near the market area is causing traffic issues and vehicle damage. Urgent repair needed.",
				Location:    "Main Road, near Sadar Bazaar",
				Category:    "infrastructure",
				Status:      models.IssueReported,
				Priority:    models.PriorityHigh,
				Upvotes:     15,
				ReporterID:  rajesh.ID,
			},
			{
				Title:       "Broken Street Light",
				Description: "Street light at the corner of Nehru Road and Gandhi Street has been non-functional for 3 days.",
				Location:    "Nehru Road & Gandhi Street intersection",
				Category:    "utilities",
				Status:      models.IssueInProgress,
				Priority:    models.PriorityMedium,
				Upvotes:     8,
				ReporterID:  priya.ID,
			},
			{
				Title:       "Stray Dogs Safety Concern",
				Description: "Increasing number of stray dogs in residential area posing safety risk, especially for children.",
				Location:    "Model Town residential area",
				Category:    "safety",
				Status:      models.IssueReported,
				Priority:    models.PriorityMedium,
				Upvotes:     22,
				ReporterID:  rajesh.ID,
			},
		}

		items := []models.MarketplaceItem{
			{
				Title:       "Handcrafted Wooden Furniture",
				Description: "Beautiful handcrafted wooden dining table and chairs set. Made from quality teak wood. Excellent condition.",
				Price:       ptr(25000.0),
				Category:    "furniture",
				Condition:   ptr(models.ConditionLikeNew),
				ContactInfo: "+91-9876543212",
				Location:    "Civil Lines",
				SellerID:    vendor.ID,
				IsApproved:  true,
				IsAvailable: true,
			},
			{
				Title:       "Laptop Repair Services",
				Description: "Professional laptop repair services. All brands supported. Quick turnaround time. Home service available.",
				Category:    "services",
				ContactInfo: "+91-9876543213",
				Location:    "Model Town",
				SellerID:    priya.ID,
				IsApproved:  true,
				IsAvailable: true,
			},
			{
				Title:       "Used Bicycle for Sale",
				Description: "Well-maintained bicycle, perfect for daily commuting. Recently serviced with new tires.",
				Price:       ptr(3500.0),
				Category:    "vehicles",
				Condition:   ptr(models.ConditionGood),
				ContactInfo: "+91-9876543210",
				Location:    "Nehru Park area",
				SellerID:    rajesh.ID,
				IsApproved:  true,
				IsAvailable: true,
			},
		}

		contacts := []models.EmergencyContact{
			{Name: "Saharanpur Police Station", Service: "Police Emergency Services", PhoneNumber: "0132-2714100", Address: "Civil Lines, Saharanpur", Category: models.EmergencyPolice, IsVerified: true, IsActive: true},
			{Name: "District Hospital", Service: "Emergency Medical Services", PhoneNumber: "0132-2714200", Address: "Hospital Road, Saharanpur", Category: models.EmergencyMedical, IsVerified: true, IsActive: true},
			{Name: "Fire Station Saharanpur", Service: "Fire Emergency Services", PhoneNumber: "0132-2714300", Address: "Station Road, Saharanpur", Category: models.EmergencyFire, IsVerified: true, IsActive: true},
			{Name: "Electricity Board", Service: "Power Supply Issues", PhoneNumber: "0132-2714400", Address: "Power House, Saharanpur", Category: models.EmergencyUtility, IsVerified: true, IsActive: true},
		}

		posts := []models.ForumPost{
			{
				Title:     "Organizing Neighborhood Watch Program",
				Content:   "I think we should organize a neighborhood watch program to improve safety in our area. Who would be interested in participating?",
				Category:  "Safety",
				Upvotes:   12,
				Downvotes: 1,
				AuthorID:  rajesh.ID,
			},
			{
				Title:     "Local Business Directory",
				Content:   "Should we create a directory of local businesses to support our community economy? Please share your thoughts and suggestions.",
				Category:  "Business",
				Upvotes:   18,
				IsPinned:  true,
				AuthorID:  admin.ID,
			},
			{
				Title:     "Traffic Congestion Solutions",
				Content:   "The traffic situation near the market area is getting worse. What solutions can we implement to reduce congestion?",
				Category:  "Infrastructure",
				Upvotes:   25,
				Downvotes: 3,
				AuthorID:  priya.ID,
			},
		}

		badges := []models.Badge{
			{Name: "Community Helper", Description: "Awarded for actively helping community members", Icon: "heart", Color: "red"},
			{Name: "Issue Reporter", Description: "Awarded for reporting community issues", Icon: "alert-circle", Color: "orange"},
			{Name: "Event Organizer", Description: "Awarded for organizing community events", Icon: "calendar", Color: "purple"},
		}

		batches := []struct {
			name string
			rows interface{}
		}{
			{"announcements", &announcements},
			{"events", &events},
			{"issues", &issues},
			{"marketplace items", &items},
			{"emergency contacts", &contacts},
			{"forum posts", &posts},
			{"badges", &badges},
		}
		for _, b := range batches {
			if err := tx.Omit(clause.Associations).Create(b.rows).Error; err != nil {
				return fmt.Errorf("seed %s: %w", b.name, err)
			}
		}

		// the health workshop already has two attendees
		if err := tx.Model(&events[1]).Omit("Attendees.*").Association("Attendees").Append(&priya, &vendor); err != nil {
			return fmt.Errorf("seed attendees: %w", err)
		}
		comment := models.ForumComment{
			Content:  "Count me in. I can cover the evening rounds on our street.",
			PostID:   posts[0].ID,
			AuthorID: priya.ID,
		}
		if err := tx.Omit(clause.Associations).Create(&comment).Error; err != nil {
			return fmt.Errorf("seed comments: %w", err)
		}

		logrus.WithFields(logrus.Fields{
			"users":         len(users),
			"announcements": len(announcements),
			"events":        len(events),
			"issues":        len(issues),
		}).Info("database seeded")
		return nil
	})
}
