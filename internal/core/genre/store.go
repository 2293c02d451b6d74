// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package genre

import "context"

type Repository interface {
	ListGenres(context context.Context) ([]Genre, error)
	GetGenreByID(context context.Context, id int64) (*Genre, error)
	ListDemographies(context context.Context) ([]Demography, error)
}
