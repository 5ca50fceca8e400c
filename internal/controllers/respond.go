package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

const (
	msgMissingFields = "Missing required fields"
	msgInvalidBody   = "Invalid request body"
)

// fail logs the underlying cause and answers with a static message. Every
// unexpected error becomes a 500; nothing is classified further for the client.
func fail(c *gin.Context, op, message string, err error) {
	entry := logrus.WithError(err).WithFields(logrus.Fields{
		"op":     op,
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
	})
	entry = withDriverFields(entry, err)
	entry.Error(message)

	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// bindFailure maps a ShouldBindJSON error to the static 400 message.
func bindFailure(c *gin.Context, op string, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		logrus.WithField("op", op).WithError(err).Debug("request missing required fields")
		badRequest(c, msgMissingFields)
		return
	}
	logrus.WithField("op", op).WithError(err).Debug("malformed request body")
	badRequest(c, msgInvalidBody)
}

// withDriverFields adds SQLSTATE details when the cause came from Postgres.
func withDriverFields(entry *logrus.Entry, err error) *logrus.Entry {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return entry.WithFields(logrus.Fields{
			"sqlstate":   pgErr.Code,
			"constraint": pgErr.ConstraintName,
		})
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return entry.WithFields(logrus.Fields{
			"sqlstate":   string(pqErr.Code),
			"constraint": pqErr.Constraint,
		})
	}
	return entry
}
