// Package session owns the dataset of one user and the command handlers
// that drive loading, cleaning and charting it.
package session

import (
	"github.com/pivolan/graphify/dataset"
	"github.com/pivolan/graphify/domain/models"
	uuid "github.com/satori/go.uuid"
)

// Session holds zero or one dataset. Replacing it is explicit; nothing else
// reaches the dataset except through Dataset.
type Session struct {
	ID      string
	dataset *dataset.Dataset
}

func New() *Session {
	return &Session{ID: uuid.NewV4().String()}
}

func (s *Session) Dataset() (*dataset.Dataset, error) {
	if s.dataset == nil {
		return nil, models.NewError(models.KindNoDatasetLoaded, "load a dataset first", nil)
	}
	return s.dataset, nil
}

func (s *Session) Replace(ds *dataset.Dataset) {
	s.dataset = ds
}

func (s *Session) Loaded() bool {
	return s.dataset != nil
}
