package application

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"calcvault/internal/domain"
)

// fieldLabels names command fields the way messages show them
var fieldLabels = map[string]string{
	"folderID":      "folder ID",
	"fileID":        "file ID",
	"itemID":        "item ID",
	"parentID":      "parent folder",
	"destinationID": "destination folder",
}

func fieldLabel(field string) string {
	if label, ok := fieldLabels[field]; ok {
		return label
	}
	return field
}

// ValidateRequired rejects a value that is empty once blanks are trimmed
func ValidateRequired(field, value string) error {
	return check(field, strings.TrimSpace(value),
		validation.Required.Error(fieldLabel(field)+" is required"))
}

// ValidateContainer rejects an id that is neither the root nor a folder of doc
func ValidateContainer(field string, doc *domain.Document, id string) error {
	return check(field, id, validation.By(func(any) error {
		if !doc.HasContainer(id) {
			return fmt.Errorf("no %s %s", fieldLabel(field), id)
		}
		return nil
	}))
}

// check runs rules against value and reports the first failure as a
// ValidationError on field
func check(field string, value any, rules ...validation.Rule) error {
	err := validation.Validate(value, rules...)
	if err == nil {
		return nil
	}
	var internal validation.InternalError
	if errors.As(err, &internal) {
		return internal
	}
	return &ValidationError{Field: field, Message: err.Error()}
}
