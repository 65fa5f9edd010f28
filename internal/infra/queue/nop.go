package queue

import "context"

// NopPublisher заглушка публикации событий для конфигураций без брокера
type NopPublisher struct{}

func (NopPublisher) PublishReservationCreated(ctx context.Context, event ReservationCreatedEvent) error {
	return nil
}

func (NopPublisher) PublishReservationCancelled(ctx context.Context, event ReservationCancelledEvent) error {
	return nil
}
