package model

// OrderEventType marks the kind of change carried by an order feed event.
type OrderEventType string

const (
	OrderEventInsert OrderEventType = "insert"
	OrderEventUpdate OrderEventType = "update"
)

// OrderEvent is the realtime change notification published whenever an
// order row is inserted or updated.
type OrderEvent struct {
	Type  OrderEventType `json:"type"`
	Order Order          `json:"order"`
}
