package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/jobapp/internal/models"
)

// JobService defines the operations of the search and favorites screens.
type JobService interface {
	List(ctx context.Context) []models.Posting
	Get(ctx context.Context, id int) (models.Posting, error)
	Favorites(ctx context.Context) []models.Posting
	ToggleFavorite(ctx context.Context, id int) (models.Posting, error)
	RemoveFavorite(ctx context.Context, id int) (models.Posting, error)
	CallEmployer(ctx context.Context, id int) (models.Dialog, error)
	Book(ctx context.Context, id int) (models.Dialog, error)
	Dialog(ctx context.Context) models.Dialog
	Dismiss(ctx context.Context)
}

type jobService struct {
	core *Core
}

func NewJobService(core *Core) JobService {
	return &jobService{core: core}
}

// BookingMessage is the confirmation text shown after booking p.
func BookingMessage(p models.Posting) string {
	return fmt.Sprintf("Бронирование для %s успешно!", p.Title)
}

func (s *jobService) List(ctx context.Context) []models.Posting {
	return s.core.Catalog.List()
}

func (s *jobService) Get(ctx context.Context, id int) (models.Posting, error) {
	return s.core.Catalog.Get(id)
}

func (s *jobService) Favorites(ctx context.Context) []models.Posting {
	return s.core.Catalog.Favorites()
}

func (s *jobService) ToggleFavorite(ctx context.Context, id int) (models.Posting, error) {
	p, err := s.core.Catalog.ToggleFavorite(ctx, id)
	if err != nil {
		return models.Posting{}, err
	}
	action := "remove"
	if p.Favorited {
		action = "add"
	}
	s.recordFavorites(action)
	return p, nil
}

func (s *jobService) RemoveFavorite(ctx context.Context, id int) (models.Posting, error) {
	wasFavorite := s.core.Catalog.IsFavorite(id)
	p, err := s.core.Catalog.RemoveFavorite(ctx, id)
	if err != nil {
		return models.Posting{}, err
	}
	if wasFavorite {
		s.recordFavorites("remove")
	}
	return p, nil
}

// CallEmployer shows the posting's contact phone.
func (s *jobService) CallEmployer(ctx context.Context, id int) (models.Dialog, error) {
	p, err := s.core.Catalog.Get(id)
	if err != nil {
		return models.Dialog{}, err
	}
	s.core.Dialog.RequestPhoneReveal(p.ContactPhone)
	return s.core.Dialog.Current(), nil
}

// Book confirms a booking of the posting's shift.
func (s *jobService) Book(ctx context.Context, id int) (models.Dialog, error) {
	p, err := s.core.Catalog.Get(id)
	if err != nil {
		return models.Dialog{}, err
	}
	s.core.Dialog.RequestBookingConfirmation(BookingMessage(p))
	s.core.Metrics.Bookings.Inc()
	s.core.Logger.Info(ctx, "shift booked", "posting_id", p.ID)
	return s.core.Dialog.Current(), nil
}

func (s *jobService) Dialog(ctx context.Context) models.Dialog {
	return s.core.Dialog.Current()
}

func (s *jobService) Dismiss(ctx context.Context) {
	s.core.Dialog.Dismiss()
}

func (s *jobService) recordFavorites(action string) {
	s.core.Metrics.FavoriteChanges.WithLabelValues(action).Inc()
	s.core.Metrics.FavoritesSize.Set(float64(len(s.core.Catalog.Favorites())))
}
