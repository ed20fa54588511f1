package usecase

import "time"

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	EventCartCreated OutboxEventType = "cart.created"
	EventItemSet     OutboxEventType = "cart.item_set"
	EventItemRemoved OutboxEventType = "cart.item_removed"
)

// OutboxEvent — запись транзакционного outbox: фиксируется в той же транзакции,
// что и мутация корзины, и отправляется в Kafka фоновым воркером.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	CartID      int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, cartID int64, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		CartID:    cartID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now().UTC(),
	}
}

// CartEventPayload — JSON-тело события изменения корзины.
type CartEventPayload struct {
	EventID    string `json:"event_id"`
	EventType  string `json:"event_type"`
	OccurredAt int64  `json:"occurred_at"`
	CartID     int64  `json:"cart_id"`
	ProductID  int64  `json:"product_id,omitempty"`
	Quantity   int32  `json:"quantity,omitempty"`
	CartTotal  int64  `json:"cart_total"`
}
