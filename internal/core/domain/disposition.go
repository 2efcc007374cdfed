// internal/core/domain/disposition.go
package domain

// DispositionKind represents the batch mutation dialogs
type DispositionKind string

// Disposition constants
const (
	DispositionSold    DispositionKind = "SOLD"
	DispositionRemoved DispositionKind = "REMOVED"
	DispositionAdjust  DispositionKind = "ADJUST"
	DispositionRestore DispositionKind = "RESTORE"
)

// Disposition is a tagged quantity mutation. For SOLD and REMOVED the amount
// is a delta subtracted from the current quantity; for ADJUST and RESTORE it
// is the new absolute quantity. RESTORE may set a quantity above the initial
// one; the restore redefines the batch, so that is preserved intentionally.
type Disposition struct {
	Kind   DispositionKind
	Amount int
}

// Outcome is the resolved quantity/status pair a disposition produces.
type Outcome struct {
	Quantity int
	Status   BatchStatus
	// Overwrite marks the restore path, which replaces status and quantity
	// unconditionally rather than keeping a non-ACTIVE status.
	Overwrite bool
}

// Resolve applies the dialog-confirmation clamping rules to the batch's
// current state. Negative amounts coerce to 0; a resulting quantity of 0
// forces SOLD_OUT.
func (d Disposition) Resolve(current Batch) Outcome {
	amount := d.Amount
	if amount < 0 {
		amount = 0
	}

	switch d.Kind {
	case DispositionSold, DispositionRemoved:
		qty := current.QtyCurrent - amount
		if qty < 0 {
			qty = 0
		}
		return Outcome{Quantity: qty, Status: statusAfter(qty, current.Status)}

	case DispositionAdjust:
		return Outcome{Quantity: amount, Status: statusAfter(amount, current.Status)}

	case DispositionRestore:
		status := StatusActive
		if amount == 0 {
			status = StatusSoldOut
		}
		return Outcome{Quantity: amount, Status: status, Overwrite: true}

	default:
		return Outcome{Quantity: current.QtyCurrent, Status: current.Status}
	}
}

func statusAfter(qty int, prior BatchStatus) BatchStatus {
	if qty == 0 {
		return StatusSoldOut
	}
	return prior
}
