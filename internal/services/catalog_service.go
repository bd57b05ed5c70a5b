// internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/comicden/comics-backend/internal/apperrors"
	"github.com/comicden/comics-backend/internal/models"
	"github.com/comicden/comics-backend/internal/utils"
)

// CatalogService keeps a comic's related entities consistent: every
// comic references exactly one existing writer, artist and publisher
// row, with missing rows created before the comic is inserted. There is
// no application-level lock around the lookup-then-create sequence; the
// store's uniqueness constraints are the final arbiter under concurrent
// identical creations, and constraint violations are translated to
// conflict errors.
type CatalogService struct {
	db *gorm.DB
}

// CreateComicRequest carries amount and price as literals; both are
// parsed and range-checked before any row is written.
type CreateComicRequest struct {
	Title     string `json:"title" validate:"required"`
	Amount    string `json:"amount" validate:"required"`
	Price     string `json:"price" validate:"required"`
	Publisher string `json:"publisher" validate:"required"`
	Writer    string `json:"writer" validate:"required"`
	Artist    string `json:"artist" validate:"required"`
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) CreateComic(req *CreateComicRequest) (*models.Comic, error) {
	title := strings.TrimSpace(req.Title)

	// Independent lookups by trimmed name; nil means not seen yet.
	writer, err := s.GetWriterByName(req.Writer)
	if err != nil {
		return nil, err
	}
	publisher, err := s.GetPublisherByName(req.Publisher)
	if err != nil {
		return nil, err
	}
	artist, err := s.GetArtistByName(req.Artist)
	if err != nil {
		return nil, err
	}

	// Validation short-circuits before any mutation; a failure here
	// leaves all four tables untouched.
	amount, err := strconv.Atoi(strings.TrimSpace(req.Amount))
	if err != nil || amount < 0 {
		return nil, fmt.Errorf("%w: bad amount", apperrors.ErrBadInput)
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(req.Price), 64)
	if err != nil || price < 0 {
		return nil, fmt.Errorf("%w: bad price", apperrors.ErrBadInput)
	}

	if !utils.MatchKind(utils.KindComicTitle, title) {
		return nil, fmt.Errorf("%w: bad title", apperrors.ErrBadInput)
	}

	if !utils.MatchKind(utils.KindPersonName, req.Writer) {
		return nil, fmt.Errorf("%w: bad writer", apperrors.ErrBadInput)
	}
	if !utils.MatchKind(utils.KindPersonName, req.Artist) {
		return nil, fmt.Errorf("%w: bad artist", apperrors.ErrBadInput)
	}
	if !utils.MatchKind(utils.KindOrgName, req.Publisher) {
		return nil, fmt.Errorf("%w: bad publisher name", apperrors.ErrBadInput)
	}

	// Related rows must exist before the comic insert, never after.
	if writer == nil {
		if writer, err = s.CreateWriter(req.Writer); err != nil {
			return nil, err
		}
	}
	if publisher == nil {
		if publisher, err = s.CreatePublisher(req.Publisher); err != nil {
			return nil, err
		}
	}
	if artist == nil {
		if artist, err = s.CreateArtist(req.Artist); err != nil {
			return nil, err
		}
	}

	comic := &models.Comic{
		Title:       title,
		Amount:      amount,
		Price:       price,
		PublisherID: publisher.ID,
		WriterID:    writer.ID,
		ArtistID:    artist.ID,
	}

	if err := s.db.Create(comic).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: comic %q", apperrors.ErrConflict, title)
		}
		return nil, fmt.Errorf("%w: create comic: %v", apperrors.ErrTransient, err)
	}

	logrus.WithFields(logrus.Fields{
		"comic_id": comic.ID,
		"title":    title,
	}).Info("Comic created")

	return comic, nil
}

func (s *CatalogService) CreatePublisher(name string) (*models.Publisher, error) {
	name = strings.TrimSpace(name)
	if !utils.MatchKind(utils.KindOrgName, name) {
		return nil, fmt.Errorf("%w: bad publisher name", apperrors.ErrBadInput)
	}

	publisher := &models.Publisher{Name: name}
	if err := s.db.Create(publisher).Error; err != nil {
		// A concurrent creation may have inserted the same name between
		// lookup and insert; the uniqueness constraint decides.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: publisher %q", apperrors.ErrConflict, name)
		}
		return nil, fmt.Errorf("%w: create publisher: %v", apperrors.ErrTransient, err)
	}

	return publisher, nil
}

func (s *CatalogService) CreateWriter(name string) (*models.Writer, error) {
	name = strings.TrimSpace(name)
	if !utils.MatchKind(utils.KindPersonName, name) {
		return nil, fmt.Errorf("%w: bad writer", apperrors.ErrBadInput)
	}

	writer := &models.Writer{Name: name}
	if err := s.db.Create(writer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: writer %q", apperrors.ErrConflict, name)
		}
		return nil, fmt.Errorf("%w: create writer: %v", apperrors.ErrTransient, err)
	}

	return writer, nil
}

func (s *CatalogService) CreateArtist(name string) (*models.Artist, error) {
	name = strings.TrimSpace(name)
	if !utils.MatchKind(utils.KindPersonName, name) {
		return nil, fmt.Errorf("%w: bad artist", apperrors.ErrBadInput)
	}

	artist := &models.Artist{Name: name}
	if err := s.db.Create(artist).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: artist %q", apperrors.ErrConflict, name)
		}
		return nil, fmt.Errorf("%w: create artist: %v", apperrors.ErrTransient, err)
	}

	return artist, nil
}

// Lookups are case-sensitive exact matches on the trimmed value. A nil
// result with nil error means no row exists.

func (s *CatalogService) GetComicByTitle(title string) (*models.Comic, error) {
	var comic models.Comic
	err := s.db.Where("title = ?", strings.TrimSpace(title)).First(&comic).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: lookup comic: %v", apperrors.ErrTransient, err)
	}
	return &comic, nil
}

func (s *CatalogService) GetPublisherByName(name string) (*models.Publisher, error) {
	var publisher models.Publisher
	err := s.db.Where("name = ?", strings.TrimSpace(name)).First(&publisher).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: lookup publisher: %v", apperrors.ErrTransient, err)
	}
	return &publisher, nil
}

func (s *CatalogService) GetWriterByName(name string) (*models.Writer, error) {
	var writer models.Writer
	err := s.db.Where("name = ?", strings.TrimSpace(name)).First(&writer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: lookup writer: %v", apperrors.ErrTransient, err)
	}
	return &writer, nil
}

func (s *CatalogService) GetArtistByName(name string) (*models.Artist, error) {
	var artist models.Artist
	err := s.db.Where("name = ?", strings.TrimSpace(name)).First(&artist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: lookup artist: %v", apperrors.ErrTransient, err)
	}
	return &artist, nil
}

func (s *CatalogService) ListComics(params utils.PaginationParams) ([]models.Comic, int64, error) {
	query := s.db.Model(&models.Comic{})

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(title) LIKE ?", searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("%w: count comics: %v", apperrors.ErrTransient, err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "title", "price", "amount"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var comics []models.Comic
	if err := query.Find(&comics).Error; err != nil {
		return nil, 0, fmt.Errorf("%w: fetch comics: %v", apperrors.ErrTransient, err)
	}

	return comics, total, nil
}

func (s *CatalogService) ListPublishers() ([]models.Publisher, error) {
	var publishers []models.Publisher
	if err := s.db.Order("name").Find(&publishers).Error; err != nil {
		return nil, fmt.Errorf("%w: fetch publishers: %v", apperrors.ErrTransient, err)
	}
	return publishers, nil
}

func (s *CatalogService) ListWriters() ([]models.Writer, error) {
	var writers []models.Writer
	if err := s.db.Order("name").Find(&writers).Error; err != nil {
		return nil, fmt.Errorf("%w: fetch writers: %v", apperrors.ErrTransient, err)
	}
	return writers, nil
}

func (s *CatalogService) ListArtists() ([]models.Artist, error) {
	var artists []models.Artist
	if err := s.db.Order("name").Find(&artists).Error; err != nil {
		return nil, fmt.Errorf("%w: fetch artists: %v", apperrors.ErrTransient, err)
	}
	return artists, nil
}

// Deletes of Publisher/Writer/Artist rely on the store cascade to remove
// dependent comics atomically with the parent row.

func (s *CatalogService) DeleteComicByTitle(title string) error {
	comic, err := s.GetComicByTitle(title)
	if err != nil {
		return err
	}
	if comic == nil {
		return fmt.Errorf("%w: title", apperrors.ErrNotFound)
	}

	if err := s.db.Delete(comic).Error; err != nil {
		return fmt.Errorf("%w: delete comic: %v", apperrors.ErrTransient, err)
	}
	return nil
}

func (s *CatalogService) DeletePublisherByName(name string) error {
	publisher, err := s.GetPublisherByName(name)
	if err != nil {
		return err
	}
	if publisher == nil {
		return fmt.Errorf("%w: name", apperrors.ErrNotFound)
	}

	if err := s.db.Delete(publisher).Error; err != nil {
		return fmt.Errorf("%w: delete publisher: %v", apperrors.ErrTransient, err)
	}

	logrus.WithField("publisher", publisher.Name).Info("Publisher deleted with its comics")
	return nil
}

func (s *CatalogService) DeleteWriterByName(name string) error {
	writer, err := s.GetWriterByName(name)
	if err != nil {
		return err
	}
	if writer == nil {
		return fmt.Errorf("%w: name", apperrors.ErrNotFound)
	}

	if err := s.db.Delete(writer).Error; err != nil {
		return fmt.Errorf("%w: delete writer: %v", apperrors.ErrTransient, err)
	}

	logrus.WithField("writer", writer.Name).Info("Writer deleted with their comics")
	return nil
}

func (s *CatalogService) DeleteArtistByName(name string) error {
	artist, err := s.GetArtistByName(name)
	if err != nil {
		return err
	}
	if artist == nil {
		return fmt.Errorf("%w: name", apperrors.ErrNotFound)
	}

	if err := s.db.Delete(artist).Error; err != nil {
		return fmt.Errorf("%w: delete artist: %v", apperrors.ErrTransient, err)
	}

	logrus.WithField("artist", artist.Name).Info("Artist deleted with their comics")
	return nil
}

// UpdateComicAmount overwrites the stock amount unconditionally. Unlike
// creation there is no non-negativity check at this call site.
func (s *CatalogService) UpdateComicAmount(title string, amount int) error {
	comic, err := s.GetComicByTitle(title)
	if err != nil {
		return err
	}
	if comic == nil {
		return fmt.Errorf("%w: title", apperrors.ErrNotFound)
	}

	if err := s.db.Model(comic).Update("amount", amount).Error; err != nil {
		return fmt.Errorf("%w: update amount: %v", apperrors.ErrTransient, err)
	}
	return nil
}
