package entities

// SequenceCounter is the allocator's per-billing-period counter record,
// keyed like "quote-2025-Q4". It is owned exclusively by the quote number
// allocator and is only ever touched through the store's atomic
// increment-and-return primitive.
type SequenceCounter struct {
	Key string `json:"key"`
	Seq int64  `json:"seq"`
}
