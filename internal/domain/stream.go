package domain

import "github.com/google/uuid"

// Stream names (должны совпадать у api и worker)
const (
	StreamPlacesSync = "stream:places:sync"
)

// SyncJob - задача полной ресинхронизации, публикуемая в стрим
type SyncJob struct {
	JobID       uuid.UUID `json:"job_id"`
	RequestedAt string    `json:"requested_at"`
}

// SyncProgress - типизированный прогресс batch-синхронизации.
// Fraction лежит в диапазоне [0, 1]; Failed содержит place_id записей,
// синхронизация которых не удалась (частичные сбои не теряются).
type SyncProgress struct {
	JobID        uuid.UUID `json:"job_id"`
	Step         int       `json:"step"`
	Total        int       `json:"total"`
	Fraction     float64   `json:"fraction"`
	CurrentPlace string    `json:"current_place,omitempty"`
	Failed       []string  `json:"failed,omitempty"`
	Done         bool      `json:"done"`
}

// SyncSummary - итог batch-синхронизации
type SyncSummary struct {
	Total  int      `json:"total"`
	Synced int      `json:"synced"`
	Failed []string `json:"failed,omitempty"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data map[string]interface{}
}
