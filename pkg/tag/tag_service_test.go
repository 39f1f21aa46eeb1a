package tag

import (
	"context"
	"testing"

	"foodgram-backend/domain"
	"foodgram-backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeTagRepository struct {
	TagRepository
	tags []*entities.Tag
}

func (f *fakeTagRepository) CreateTag(_ context.Context, tag *entities.Tag) error {
	for _, existing := range f.tags {
		if existing.Name == tag.Name || existing.Color == tag.Color || existing.Slug == tag.Slug {
			return gorm.ErrDuplicatedKey
		}
	}
	f.tags = append(f.tags, tag)
	return nil
}

func (f *fakeTagRepository) GetTags(_ context.Context) ([]*entities.Tag, error) {
	return f.tags, nil
}

func TestCreateTagSlugifiesName(t *testing.T) {
	repo := &fakeTagRepository{}
	service := NewTagService(repo)

	res, err := service.CreateTag(context.Background(), domain.CreateTagRequest{
		Name:  "Quick Breakfast",
		Color: "#E26C2D",
	})
	require.NoError(t, err)

	assert.Equal(t, "quick-breakfast", res.Slug)
	assert.Equal(t, "#E26C2D", res.Color)
}

func TestCreateTagDuplicate(t *testing.T) {
	repo := &fakeTagRepository{}
	service := NewTagService(repo)

	_, err := service.CreateTag(context.Background(), domain.CreateTagRequest{
		Name:  "Breakfast",
		Color: "#E26C2D",
	})
	require.NoError(t, err)

	_, err = service.CreateTag(context.Background(), domain.CreateTagRequest{
		Name:  "Breakfast",
		Color: "#49B64E",
	})
	assert.ErrorIs(t, err, domain.ErrTagAlreadyExists)
}
