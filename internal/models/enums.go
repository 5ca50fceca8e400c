package models

import (
	"fmt"
	"strings"
)

// Priority ranks announcements and issues. Priorities lists every value in
// ascending severity; the position doubles as the rank used for sorting.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

var Priorities = [...]Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// Index returns the position of p in Priorities, or -1.
func (p Priority) Index() int {
	for i, v := range Priorities {
		if v == p {
			return i
		}
	}
	return -1
}

func (p Priority) Valid() bool { return p.Index() >= 0 }

// ParsePriority accepts any letter case and surrounding whitespace.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("unknown priority %q", s)
	}
	return p, nil
}

// IssueStatus is the lifecycle position of a reported issue. No transition
// rules are enforced between states.
type IssueStatus string

const (
	IssueReported   IssueStatus = "reported"
	IssueInProgress IssueStatus = "in_progress"
	IssueResolved   IssueStatus = "resolved"
	IssueClosed     IssueStatus = "closed"
)

var IssueStatuses = [...]IssueStatus{IssueReported, IssueInProgress, IssueResolved, IssueClosed}

func (s IssueStatus) Index() int {
	for i, v := range IssueStatuses {
		if v == s {
			return i
		}
	}
	return -1
}

func (s IssueStatus) Valid() bool { return s.Index() >= 0 }

func ParseIssueStatus(s string) (IssueStatus, error) {
	st := IssueStatus(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", fmt.Errorf("unknown issue status %q", s)
	}
	return st, nil
}

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCitizen Role = "citizen"
	RoleVendor  Role = "vendor"
)

var Roles = [...]Role{RoleAdmin, RoleCitizen, RoleVendor}

func (r Role) Valid() bool {
	for _, v := range Roles {
		if v == r {
			return true
		}
	}
	return false
}

// ParseRole defaults an empty role to citizen.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if r == "" {
		return RoleCitizen, nil
	}
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// Condition describes a second-hand marketplace item.
type Condition string

const (
	ConditionNew     Condition = "new"
	ConditionLikeNew Condition = "like-new"
	ConditionGood    Condition = "good"
	ConditionFair    Condition = "fair"
)

var Conditions = [...]Condition{ConditionNew, ConditionLikeNew, ConditionGood, ConditionFair}

func (c Condition) Index() int {
	for i, v := range Conditions {
		if v == c {
			return i
		}
	}
	return -1
}

func (c Condition) Valid() bool { return c.Index() >= 0 }

type EmergencyCategory string

const (
	EmergencyPolice  EmergencyCategory = "police"
	EmergencyFire    EmergencyCategory = "fire"
	EmergencyMedical EmergencyCategory = "medical"
	EmergencyUtility EmergencyCategory = "utility"
	EmergencyOther   EmergencyCategory = "other"
)

var EmergencyCategories = [...]EmergencyCategory{
	EmergencyPolice, EmergencyFire, EmergencyMedical, EmergencyUtility, EmergencyOther,
}

func (e EmergencyCategory) Index() int {
	for i, v := range EmergencyCategories {
		if v == e {
			return i
		}
	}
	return -1
}

func (e EmergencyCategory) Valid() bool { return e.Index() >= 0 }

// ParseEmergencyCategory folds case the same way the pages compare categories.
func ParseEmergencyCategory(s string) (EmergencyCategory, error) {
	e := EmergencyCategory(strings.ToLower(strings.TrimSpace(s)))
	if !e.Valid() {
		return "", fmt.Errorf("unknown emergency category %q", s)
	}
	return e, nil
}

// PriorityRankSQL renders a CASE expression ranking column by severity, so
// "urgent" sorts above "high" instead of following string order.
func PriorityRankSQL(column string) string {
	var b strings.Builder
	b.WriteString("CASE ")
	b.WriteString(column)
	for i, p := range Priorities {
		fmt.Fprintf(&b, " WHEN '%s' THEN %d", p, i+1)
	}
	b.WriteString(" ELSE 0 END")
	return b.String()
}

// IssueStatusRankSQL orders statuses by their lifecycle position.
func IssueStatusRankSQL(column string) string {
	var b strings.Builder
	b.WriteString("CASE ")
	b.WriteString(column)
	for i, s := range IssueStatuses {
		fmt.Fprintf(&b, " WHEN '%s' THEN %d", s, i+1)
	}
	b.WriteString(" ELSE 0 END")
	return b.String()
}

// All lists every table in dependency order for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Announcement{},
		&Event{},
		&Issue{},
		&MarketplaceItem{},
		&EmergencyContact{},
		&ForumPost{},
		&ForumComment{},
		&Badge{},
	}
}
