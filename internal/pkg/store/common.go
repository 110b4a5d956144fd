package store

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/ihbirlik/geocoord-pro/internal/pkg/constants"
)

const (
	tableWells             = "wells"
	tableTestStages        = "test_stages"
	tableLithologySegments = "lithology_segments"
)

// driverMisses are the pgx errors that mean "no such row".
var driverMisses = []error{pgx.ErrNoRows}

// wrapErr turns a driver miss into constants.ErrDBNotFound so callers can
// branch on it, and passes anything else through untouched.
func wrapErr(err error) error {
	for _, miss := range driverMisses {
		if errors.Is(err, miss) {
			return constants.ErrDBNotFound
		}
	}
	return err
}

// builder starts every well query with postgres $N placeholders.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
