package worker

import (
	"context"
)

// Worker - фоновый обработчик, управляемый менеджером
type Worker interface {
	// Start запускает цикл обработки; блокирует до остановки
	Start(ctx context.Context) error

	// Stop сигнализирует воркеру о завершении
	Stop() error

	// Name возвращает имя воркера
	Name() string
}
