// Package actions implements the invoice mutation pipeline: untrusted form
// input is validated once at the boundary, coerced into a typed record, and
// written through the invoice repository. Every attempt resolves to exactly
// one Outcome variant.
package actions

// FieldErrors maps a form field name to its ordered validation messages.
type FieldErrors map[string][]string

func (fe FieldErrors) add(field, message string) {
	fe[field] = append(fe[field], message)
}

// OutcomeKind discriminates the result of a mutation attempt.
type OutcomeKind int

const (
	// OutcomeRedirect is the success result of create and update; the caller
	// navigates to Location and treats the invoice views as invalidated.
	OutcomeRedirect OutcomeKind = iota
	// OutcomeValidationFailed carries field-scoped errors; nothing was written.
	OutcomeValidationFailed
	// OutcomePersistenceFailed means the write was attempted and failed
	// atomically; no partial state remains.
	OutcomePersistenceFailed
	// OutcomeConfirmed is the success result of delete, which is invoked from
	// within the list view and does not navigate away.
	OutcomeConfirmed
)

// Outcome is the discriminated result of one mutation attempt. Exactly one
// kind applies per attempt; callers switch on Kind and handle every variant.
type Outcome struct {
	Kind     OutcomeKind
	Location string      // OutcomeRedirect only
	Errors   FieldErrors // OutcomeValidationFailed only
	Message  string      // failure detail or confirmation text
}

// Caller-facing messages. The create-message reuse on the update path is kept
// verbatim for parity with the frontend copy.
const (
	msgMissingFields = "Missing Fields. Failed to create invoice"
	msgCreateFailed  = "Database Error: Failed to create invoice"
	msgUpdateFailed  = "Database Error: Failed to update invoice"
	msgDeleteFailed  = "Database Error: Failed to delete invoice"
	msgDeleted       = "Invoice deleted."
)

func redirectTo(location string) Outcome {
	return Outcome{Kind: OutcomeRedirect, Location: location}
}

func validationFailed(errs FieldErrors, message string) Outcome {
	return Outcome{Kind: OutcomeValidationFailed, Errors: errs, Message: message}
}

func persistenceFailed(message string) Outcome {
	return Outcome{Kind: OutcomePersistenceFailed, Message: message}
}

func confirmed(message string) Outcome {
	return Outcome{Kind: OutcomeConfirmed, Message: message}
}
