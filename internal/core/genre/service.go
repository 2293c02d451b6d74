// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package genre

import (
	"context"

	"github.com/taibuivan/serieshub/internal/platform/validate"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (service *Service) ListGenres(context context.Context) ([]Genre, error) {
	return service.repo.ListGenres(context)
}

func (service *Service) GetGenre(context context.Context, id int64) (*Genre, error) {
	if err := (&validate.Validator{}).Positive("id", id).Err(); err != nil {
		return nil, err
	}
	return service.repo.GetGenreByID(context, id)
}

func (service *Service) ListDemographies(context context.Context) ([]Demography, error) {
	return service.repo.ListDemographies(context)
}
