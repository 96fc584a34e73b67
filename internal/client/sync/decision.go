package sync

// Kind is the outcome of reconciling one cached item.
type Kind int

const (
	Keep Kind = iota
	Update
	Remove
	Clamp
	Adopt // запись есть только на сервере и добавляется в кэш
)

func (k Kind) String() string {
	switch k {
	case Keep:
		return "keep"
	case Update:
		return "update"
	case Remove:
		return "remove"
	case Clamp:
		return "clamp"
	case Adopt:
		return "adopt"
	}
	return "unknown"
}

// Reasons shown to the user.
const (
	ReasonUnavailable     = "no longer available"
	ReasonOutOfStock      = "out of stock"
	ReasonClamped         = "adjusted to available stock"
	ReasonInfoUpdated     = "price/info updated"
	ReasonOrderStatus     = "order status updated"
	ReasonNewNotification = "new notification"
)

// Decision describes what to do with one cached item.
type Decision[T any] struct {
	Payload  T      // новое содержимое для Update, Clamp и Adopt
	Key      string // заполняется синхронизатором
	Reason   string
	Subject  string // что показать пользователю перед причиной, например название товара
	Kind     Kind
	Quantity int  // новое количество для Clamp
	Silent   bool // применить без уведомления
}

// Message is the notice text for the decision.
func (d Decision[T]) Message() string {
	if d.Subject == "" {
		return d.Reason
	}
	return d.Subject + ": " + d.Reason
}

// KeepItem is the no-op decision.
func KeepItem[T any]() Decision[T] {
	return Decision[T]{Kind: Keep}
}
