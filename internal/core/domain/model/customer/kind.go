package customer

// Kind tags the customer variant.
type Kind int

const (
	UnknownKind Kind = iota
	Registered
	Guest
)

func (k Kind) String() string {
	switch k {
	case Registered:
		return "REGISTERED"
	case Guest:
		return "GUEST"
	default:
		return "UNKNOWN"
	}
}
