package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"booking_admin_backend/internal/knowledge/repository"
	"booking_admin_backend/internal/knowledge/transport"
	"booking_admin_backend/platform/apperr"
	"booking_admin_backend/platform/logger"
)

type fakeRepo struct {
	articles map[uuid.UUID]repository.Article

	lastCreate repository.CreateParams
	lastList   repository.ListParams
	lastUpdate repository.UpdateParams
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{articles: map[uuid.UUID]repository.Article{}}
}

func (f *fakeRepo) Create(_ context.Context, params repository.CreateParams) (repository.Article, error) {
	f.lastCreate = params
	article := repository.Article{
		ID:       uuid.New(),
		Title:    params.Title,
		Content:  params.Content,
		Language: params.Language,
		IsActive: params.IsActive,
	}
	f.articles[article.ID] = article
	return article, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (repository.Article, error) {
	article, ok := f.articles[id]
	if !ok {
		return repository.Article{}, apperr.NotFound("article not found")
	}
	return article, nil
}

func (f *fakeRepo) List(_ context.Context, params repository.ListParams) ([]repository.Article, int, error) {
	f.lastList = params
	out := []repository.Article{}
	for _, a := range f.articles {
		out = append(out, a)
	}
	return out, len(out), nil
}

func (f *fakeRepo) Update(_ context.Context, id uuid.UUID, params repository.UpdateParams) (repository.Article, error) {
	f.lastUpdate = params
	article, ok := f.articles[id]
	if !ok {
		return repository.Article{}, apperr.NotFound("article not found")
	}
	if params.Title != nil {
		article.Title = *params.Title
	}
	if params.IsActive != nil {
		article.IsActive = *params.IsActive
	}
	f.articles[id] = article
	return article, nil
}

func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.articles[id]; !ok {
		return apperr.NotFound("article not found")
	}
	delete(f.articles, id)
	return nil
}

func newTestService() (*Service, *fakeRepo) {
	repo := newFakeRepo()
	return New(repo, logger.New("test")), repo
}

func TestCreateDefaultsToActive(t *testing.T) {
	svc, repo := newTestService()

	article, err := svc.Create(context.Background(), transport.CreateArticleRequest{
		Title:    "Booking FAQ",
		Content:  "How bookings work.",
		Language: repository.LanguageEnglish,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !repo.lastCreate.IsActive || !article.IsActive {
		t.Fatal("expected a new article to default to active")
	}
}

func TestCreateHonorsExplicitInactive(t *testing.T) {
	svc, repo := newTestService()

	inactive := false
	_, err := svc.Create(context.Background(), transport.CreateArticleRequest{
		Title:    "Draft notes",
		Content:  "Not ready yet.",
		Language: repository.LanguageNepali,
		IsActive: &inactive,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.lastCreate.IsActive {
		t.Fatal("expected the explicit inactive flag to be kept")
	}
}

func TestListClampsLimit(t *testing.T) {
	svc, repo := newTestService()

	if _, err := svc.List(context.Background(), transport.ListArticlesRequest{Limit: 10000}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastList.Limit != maxLimit {
		t.Fatalf("expected limit clamped to %d, got %d", maxLimit, repo.lastList.Limit)
	}

	if _, err := svc.List(context.Background(), transport.ListArticlesRequest{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastList.Limit != defaultLimit {
		t.Fatalf("expected default limit %d, got %d", defaultLimit, repo.lastList.Limit)
	}
}

func TestUpdatePassesOnlyProvidedFields(t *testing.T) {
	svc, repo := newTestService()
	created, err := svc.Create(context.Background(), transport.CreateArticleRequest{
		Title:    "Original title",
		Content:  "Original content.",
		Language: repository.LanguageHindi,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	newTitle := "Updated title"
	id := uuid.MustParse(created.ID)
	updated, err := svc.Update(context.Background(), id, transport.UpdateArticleRequest{Title: &newTitle})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.lastUpdate.Content != nil || repo.lastUpdate.Language != nil || repo.lastUpdate.IsActive != nil {
		t.Fatalf("expected untouched fields to stay nil: %+v", repo.lastUpdate)
	}
	if updated.Title != newTitle {
		t.Fatalf("expected updated title, got %q", updated.Title)
	}
}

func TestGetUnknownArticleReturnsNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetByID(context.Background(), uuid.New())
	if apperr.GetKind(err) != apperr.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
