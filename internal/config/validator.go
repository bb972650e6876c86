package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	bookshelferrors "github.com/alexisbeaulieu97/bookshelf/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance is shared by documents and settings. Field names are
// reported with their yaml or koanf key, so errors point at what the user
// actually wrote.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, tag := range []string{"yaml", "koanf"} {
				name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return strings.ToLower(f.Name)
		})

		_ = v.RegisterValidation("published_date", func(fl validator.FieldLevel) bool {
			_, err := ParsePublished(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// ValidateCatalog checks the document's tags, then rejects duplicate book ids.
func ValidateCatalog(doc *CatalogDocument) error {
	if doc == nil {
		return bookshelferrors.NewValidationError("catalog", "catalog is nil", nil)
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(doc.Books))
	for i, book := range doc.Books {
		if first, dup := seen[book.ID]; dup {
			return bookshelferrors.NewValidationError(fieldForBook(i, "id"), fmt.Sprintf("duplicate book id %q (first seen at books[%d])", book.ID, first), nil)
		}
		seen[book.ID] = i
	}

	return nil
}

// ValidateSettings checks settings against their validate tags.
func ValidateSettings(s *Settings) error {
	if s == nil {
		return bookshelferrors.NewValidationError("settings", "settings are nil", nil)
	}
	if err := validatorInstance().Struct(s); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// convertValidationError reports the first failing field only.
func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return bookshelferrors.NewValidationError("", err.Error(), err)
	}

	fe := ves[0]
	field := fieldPath(fe)
	return bookshelferrors.NewValidationError(field, describe(fe), err)
}

// fieldPath drops the root struct name: "CatalogDocument.books[2].published"
// becomes "books[2].published".
func fieldPath(fe validator.FieldError) string {
	_, path, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}
	return path
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "hostname_port":
		return "must be a host:port address"
	case "published_date":
		return fmt.Sprintf("%q is not a date (published_date: RFC3339, 2006-01-02 or a year)", fe.Value())
	default:
		return fmt.Sprintf("failed the %q check", fe.Tag())
	}
}

func fieldForBook(index int, field string) string {
	return fmt.Sprintf("books[%d].%s", index, field)
}
