package customer

import (
	"strings"

	"github.com/insure-planner/go-api-server/internal/model"
)

// StatusFilterAll is the sentinel status that matches every customer.
const StatusFilterAll = "전체"

// Query is the filter criteria applied to the customer collection.
// All fields are optional; set fields combine with logical AND.
type Query struct {
	// Search matches case-insensitively against the name or literally
	// against the raw phone string.
	Search string
	// Status is an exact status match, or 전체/empty for all.
	Status string
	// BirthMonth is the two-digit month (01-12) extracted from birthDate.
	BirthMonth string
	// Tag matches customers with at least one contract carrying the tag.
	Tag string
}

// Filter derives the visible subset of customers for a query. It is a pure
// function: stable (input order preserved), no mutation, and it always
// returns a non-nil slice.
func Filter(customers []model.Customer, q Query) []model.Customer {
	result := make([]model.Customer, 0, len(customers))

	for _, c := range customers {
		if !matchesSearch(c, q.Search) {
			continue
		}
		if !matchesStatus(c, q.Status) {
			continue
		}
		if !matchesBirthMonth(c, q.BirthMonth) {
			continue
		}
		if !matchesTag(c, q.Tag) {
			continue
		}
		result = append(result, c)
	}

	return result
}

func matchesSearch(c model.Customer, search string) bool {
	if search == "" {
		return true
	}
	// name matches case-insensitively, phone matches the raw query
	return strings.Contains(strings.ToLower(c.Name), strings.ToLower(search)) ||
		strings.Contains(c.Phone, search)
}

func matchesStatus(c model.Customer, status string) bool {
	if status == "" || status == StatusFilterAll {
		return true
	}
	return string(c.Status) == status
}

func matchesBirthMonth(c model.Customer, month string) bool {
	if month == "" {
		return true
	}
	// birthDate is YYYY-MM-DD; anything without a month part never matches
	parts := strings.Split(c.BirthDate, "-")
	if len(parts) < 2 {
		return false
	}
	return parts[1] == month
}

func matchesTag(c model.Customer, tag string) bool {
	if tag == "" {
		return true
	}
	for _, con := range c.Contracts {
		if con.HasTag(tag) {
			return true
		}
	}
	return false
}
