package wizard

// Stage is one step of the linear booking flow. Navigation moves exactly one
// stage at a time, forward only when the stage's guard is satisfied.
type Stage int

const (
	StageDates Stage = iota + 1
	StageRoom
	StageServices
	StageCustomer
	StageConfirm
)

func (s Stage) String() string {
	switch s {
	case StageDates:
		return "dates"
	case StageRoom:
		return "room"
	case StageServices:
		return "services"
	case StageCustomer:
		return "customer"
	case StageConfirm:
		return "confirmation"
	default:
		return "unknown"
	}
}
