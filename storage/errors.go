package storage

import (
	"errors"
	"fmt"
	"strings"

	"kicker-league/models"

	"gorm.io/gorm"
)

var (
	// ErrReferentialIntegrity is returned when a write references a player
	// or team that does not exist.
	ErrReferentialIntegrity = errors.New("unknown player or team name")

	// ErrUnsupportedOperation matches every *UnsupportedOperationError.
	ErrUnsupportedOperation = errors.New("unsupported storage operation")
)

// UnsupportedOperationError is a programming error: the dispatcher has no
// implementation of Op for values of Kind.
type UnsupportedOperationError struct {
	Op   string
	Kind models.Kind
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("could not %s object of unknown type: %s", e.Op, e.Kind)
}

func (e *UnsupportedOperationError) Unwrap() error { return ErrUnsupportedOperation }

func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "foreign key constraint failed") ||
		strings.Contains(message, "violates foreign key constraint")
}
