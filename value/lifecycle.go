package value

import "github.com/PM-IDE/bxes/typeid"

// BrafLifecycle is the 20-member BRAF lifecycle transition enum.
type BrafLifecycle uint8

// BRAF lifecycle ordinals, stable across versions.
const (
	BrafUnspecified BrafLifecycle = iota
	BrafClosed
	BrafClosedCancelled
	BrafClosedCancelledAborted
	BrafClosedCancelledError
	BrafClosedCancelledExited
	BrafClosedCancelledObsolete
	BrafClosedCancelledTerminated
	BrafCompleted
	BrafCompletedFailed
	BrafCompletedSuccess
	BrafOpen
	BrafOpenNotRunning
	BrafOpenNotRunningAssigned
	BrafOpenNotRunningReserved
	BrafOpenNotRunningSuspendedAssigned
	BrafOpenNotRunningSuspendedReserved
	BrafOpenRunning
	BrafOpenRunningInProgress
	BrafOpenRunningSuspended

	// MaxBrafLifecycle is the highest valid BRAF ordinal (19).
	MaxBrafLifecycle = BrafOpenRunningSuspended
)

func (v BrafLifecycle) Tag() typeid.ID { return typeid.BrafLifecycle }
func (v BrafLifecycle) Equal(o Value) bool {
	other, ok := o.(BrafLifecycle)
	return ok && other == v
}
func (v BrafLifecycle) Hash() uint64 { return hashUint64(typeid.BrafLifecycle, uint64(v)) }

// Valid reports whether the ordinal falls within the 20 defined members.
func (v BrafLifecycle) Valid() bool { return v <= MaxBrafLifecycle }

var brafNames = [...]string{
	"Unspecified", "Closed", "ClosedCancelled", "ClosedCancelledAborted",
	"ClosedCancelledError", "ClosedCancelledExited", "ClosedCancelledObsolete",
	"ClosedCancelledTerminated", "Completed", "CompletedFailed", "CompletedSuccess",
	"Open", "OpenNotRunning", "OpenNotRunningAssigned", "OpenNotRunningReserved",
	"OpenNotRunningSuspendedAssigned", "OpenNotRunningSuspendedReserved",
	"OpenRunning", "OpenRunningInProgress", "OpenRunningSuspended",
}

func (v BrafLifecycle) String() string {
	if int(v) < len(brafNames) {
		return brafNames[v]
	}

	return "Invalid"
}

// StandardLifecycle is the 14-member Standard lifecycle transition enum.
type StandardLifecycle uint8

// Standard lifecycle ordinals, stable across versions.
const (
	StdUnspecified StandardLifecycle = iota
	StdAssign
	StdAteAbort
	StdAutoskip
	StdComplete
	StdManualSkip
	StdPiAbort
	StdReAssign
	StdResume
	StdSchedule
	StdStart
	StdSuspend
	StdUnknown
	StdWithdraw

	// MaxStandardLifecycle is the highest valid Standard ordinal (13).
	MaxStandardLifecycle = StdWithdraw
)

func (v StandardLifecycle) Tag() typeid.ID { return typeid.StandardLifecycle }
func (v StandardLifecycle) Equal(o Value) bool {
	other, ok := o.(StandardLifecycle)
	return ok && other == v
}
func (v StandardLifecycle) Hash() uint64 { return hashUint64(typeid.StandardLifecycle, uint64(v)) }

// Valid reports whether the ordinal falls within the 14 defined members.
func (v StandardLifecycle) Valid() bool { return v <= MaxStandardLifecycle }

var standardNames = [...]string{
	"Unspecified", "Assign", "AteAbort", "Autoskip", "Complete", "ManualSkip",
	"PiAbort", "ReAssign", "Resume", "Schedule", "Start", "Suspend", "Unknown", "Withdraw",
}

func (v StandardLifecycle) String() string {
	if int(v) < len(standardNames) {
		return standardNames[v]
	}

	return "Invalid"
}
