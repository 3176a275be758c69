package content

import (
	"context"
	"testing"
	"time"

	"github.com/folio/pkg/entities"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.Project{},
		&entities.Testimonial{},
		&entities.Skill{},
		&entities.Education{},
		&entities.Experience{},
		&entities.Service{},
		&entities.Profile{},
		&entities.SiteSettings{},
	))
	return NewRepo(db)
}

func TestListProjects_OrderedAscending(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, order := range []int{3, 1, 2} {
		p := entities.Project{Title: "p", Order: order}
		require.NoError(t, repo.CreateProject(ctx, &p))
	}

	items, err := repo.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, []int{1, 2, 3}, []int{items[0].Order, items[1].Order, items[2].Order})
}

func TestListSkills_OrderedAscending(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, order := range []int{5, 0, 2} {
		s := entities.Skill{Name: "s", Order: order}
		require.NoError(t, repo.CreateSkill(ctx, &s))
	}

	items, err := repo.ListSkills(ctx)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 5}, []int{items[0].Order, items[1].Order, items[2].Order})
}

func TestListTestimonials_NewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	names := []string{"oldest", "middle", "newest"}
	for i, name := range names {
		tm := entities.Testimonial{Name: name, Text: "t"}
		tm.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.CreateTestimonial(ctx, &tm))
	}

	items, err := repo.ListTestimonials(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, "newest", items[0].Name)
	require.Equal(t, "oldest", items[2].Name)
}

func TestDeleteThenGet_NotFound(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	p := entities.Project{Title: "doomed"}
	require.NoError(t, repo.CreateProject(ctx, &p))
	require.NotEmpty(t, p.ID)

	require.NoError(t, repo.DeleteProject(ctx, p.ID))

	_, err := repo.GetProject(ctx, p.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDelete_UnknownID(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.DeleteService(context.Background(), "no-such-id")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestContentBase_GeneratesID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	a := entities.Service{Title: "one"}
	b := entities.Service{Title: "two"}
	require.NoError(t, repo.CreateService(ctx, &a))
	require.NoError(t, repo.CreateService(ctx, &b))
	require.NotEmpty(t, a.ID)
	require.NotEqual(t, a.ID, b.ID)
}

func TestListTestimonialsPage(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		tm := entities.Testimonial{Name: "n", Text: "t"}
		require.NoError(t, repo.CreateTestimonial(ctx, &tm))
	}

	items, totalPages, err := repo.ListTestimonialsPage(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, 2, totalPages)
	require.Len(t, items, 5)

	_, _, err = repo.ListTestimonialsPage(ctx, 3)
	require.Error(t, err)
}
