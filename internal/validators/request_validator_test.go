package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procurio/purchasing-automation/models"
)

type sampleRequest struct {
	Name     string  `json:"name" validate:"required"`
	Quantity int     `json:"quantity" validate:"gte=1,lte=100"`
	Contact  string  `json:"contact" validate:"omitempty,email"`
	Notes    *string `json:"notes" validate:"required"`
}

func validSample() sampleRequest {
	notes := "restock before winter"
	return sampleRequest{
		Name:     "ACME Supplies",
		Quantity: 10,
		Contact:  "orders@acme.example",
		Notes:    &notes,
	}
}

func TestRequestValidator_Valid(t *testing.T) {
	rv := NewRequestValidator()

	err := rv.Validate(context.Background(), validSample())
	assert.NoError(t, err)
}

func TestRequestValidator_ReportsAllViolations(t *testing.T) {
	rv := NewRequestValidator()

	req := sampleRequest{
		Name:     "",
		Quantity: 500,
		Contact:  "not-an-email",
		Notes:    nil,
	}

	err := rv.Validate(context.Background(), req)
	require.Error(t, err)

	var failure *models.Failure
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, models.FailureValidation, failure.Kind)
	require.Len(t, failure.Details, 4)

	byField := map[string]models.FieldViolation{}
	for _, v := range failure.Details {
		byField[v.Field] = v
	}

	assert.Equal(t, models.ReasonEmptyValue, byField["name"].Reason)
	assert.Equal(t, models.ReasonOutOfRange, byField["quantity"].Reason)
	assert.Equal(t, models.ReasonPatternMismatch, byField["contact"].Reason)
	assert.Equal(t, models.ReasonMissing, byField["notes"].Reason)
}

func TestRequestValidator_EmptyStringVersusMissingPointer(t *testing.T) {
	rv := NewRequestValidator()

	req := validSample()
	req.Name = ""
	req.Notes = nil

	err := rv.Validate(context.Background(), req)
	require.Error(t, err)

	var failure *models.Failure
	require.True(t, errors.As(err, &failure))

	reasons := map[string]string{}
	for _, v := range failure.Details {
		reasons[v.Field] = v.Reason
	}
	assert.Equal(t, models.ReasonEmptyValue, reasons["name"])
	assert.Equal(t, models.ReasonMissing, reasons["notes"])
}

func TestRequestValidator_PartialFields(t *testing.T) {
	rv := NewRequestValidator()

	req := sampleRequest{Name: "ACME", Quantity: 0, Notes: nil}

	// Only Name is scoped in: the other violations must not surface.
	err := rv.Validate(context.Background(), req, "Name")
	assert.NoError(t, err)

	err = rv.Validate(context.Background(), req, "Quantity")
	require.Error(t, err)

	var failure *models.Failure
	require.True(t, errors.As(err, &failure))
	require.Len(t, failure.Details, 1)
	assert.Equal(t, "quantity", failure.Details[0].Field)
}

func TestRequestValidator_NonStructInput(t *testing.T) {
	rv := NewRequestValidator()

	err := rv.Validate(context.Background(), "not a struct")
	require.Error(t, err)

	var failure *models.Failure
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, models.FailureInternal, failure.Kind)
}

func TestRequestValidator_RunPipelineRequest(t *testing.T) {
	rv := NewRequestValidator()

	err := rv.Validate(context.Background(), models.RunPipelineRequest{})
	require.Error(t, err)

	var failure *models.Failure
	require.True(t, errors.As(err, &failure))
	require.Len(t, failure.Details, 1)
	assert.Equal(t, "csv_content", failure.Details[0].Field)
	assert.Equal(t, models.ReasonEmptyValue, failure.Details[0].Reason)

	err = rv.Validate(context.Background(), models.RunPipelineRequest{CSVContent: "a,b\n1,2"})
	assert.NoError(t, err)
}
