// Package handlers wires the review store, the classifier and the supporting
// clients onto gin routes. Every error is recoverable: it is mapped to a
// status code and surfaced as {"error": ...}, leaving prior state intact.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-reviewbird/classifier"
	"go-reviewbird/reviews"
)

// respondError maps the error taxonomy onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	var transportErr *reviews.TransportError
	var malformedErr *reviews.MalformedInputError
	var apiErr *classifier.APIError
	var shapeErr *classifier.ResponseShapeError

	switch {
	case errors.Is(err, reviews.ErrEmptyCollection):
		status = http.StatusConflict
	case errors.As(err, &transportErr), errors.As(err, &apiErr):
		status = http.StatusBadGateway
	case errors.As(err, &malformedErr), errors.As(err, &shapeErr):
		status = http.StatusUnprocessableEntity
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
