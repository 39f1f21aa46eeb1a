package user

import (
	"context"
	"errors"
	"testing"

	"foodgram-backend/domain"
	"foodgram-backend/entities"
	"foodgram-backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users   map[string]*entities.User
	follows map[string]bool
	recipes map[string][]*entities.Recipe

	subscribedErr error
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		users:   make(map[string]*entities.User),
		follows: make(map[string]bool),
		recipes: make(map[string][]*entities.Recipe),
	}
}

func followKey(subscriberID, targetID string) string { return subscriberID + "|" + targetID }

func (f *fakeUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	f.users[user.ID.String()] = user
	return nil
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUsers(_ context.Context, _, _ int) ([]*entities.User, int64, error) {
	result := make([]*entities.User, 0, len(f.users))
	for _, user := range f.users {
		result = append(result, user)
	}
	return result, int64(len(result)), nil
}

func (f *fakeUserRepository) UpdateUser(_ context.Context, user *entities.User) error {
	f.users[user.ID.String()] = user
	return nil
}

func (f *fakeUserRepository) EmailExists(_ context.Context, email string) (bool, error) {
	for _, user := range f.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepository) UsernameExists(_ context.Context, username string) (bool, error) {
	for _, user := range f.users {
		if user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepository) Subscribe(_ context.Context, subscriberID, targetID string) error {
	key := followKey(subscriberID, targetID)
	if f.follows[key] {
		return gorm.ErrDuplicatedKey
	}
	f.follows[key] = true
	return nil
}

func (f *fakeUserRepository) Unsubscribe(_ context.Context, subscriberID, targetID string) (int64, error) {
	key := followKey(subscriberID, targetID)
	if !f.follows[key] {
		return 0, nil
	}
	delete(f.follows, key)
	return 1, nil
}

func (f *fakeUserRepository) IsSubscribed(_ context.Context, subscriberID, targetID string) (bool, error) {
	if f.subscribedErr != nil {
		return false, f.subscribedErr
	}
	return f.follows[followKey(subscriberID, targetID)], nil
}

func (f *fakeUserRepository) GetSubscriptions(_ context.Context, subscriberID string, _, _ int) ([]*entities.User, int64, error) {
	var result []*entities.User
	for key := range f.follows {
		if len(key) > len(subscriberID) && key[:len(subscriberID)] == subscriberID {
			targetID := key[len(subscriberID)+1:]
			if user, ok := f.users[targetID]; ok {
				result = append(result, user)
			}
		}
	}
	return result, int64(len(result)), nil
}

func (f *fakeUserRepository) CountRecipesByAuthor(_ context.Context, authorID string) (int64, error) {
	return int64(len(f.recipes[authorID])), nil
}

func (f *fakeUserRepository) GetRecipePreviewsByAuthor(_ context.Context, authorID string, limit int) ([]*entities.Recipe, error) {
	recipes := f.recipes[authorID]
	if len(recipes) > limit {
		recipes = recipes[:limit]
	}
	return recipes, nil
}

type fakeJWT struct {
	jwt.JWTService
}

func (fakeJWT) GenerateTokenUser(string, string) string { return "test-token" }

func seedUser(repo *fakeUserRepository, username, email, password string) *entities.User {
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	user := &entities.User{
		ID:        uuid.New(),
		Username:  username,
		Email:     email,
		FirstName: "Test",
		LastName:  "User",
		Password:  string(hashed),
	}
	repo.users[user.ID.String()] = user
	return user
}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, fakeJWT{})

	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Username:  "chef",
		Email:     "chef@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Password:  "s3cret-pass",
	})
	require.NoError(t, err)

	assert.Equal(t, "chef", res.Username)
	assert.False(t, res.IsSubscribed)

	stored, err := repo.GetUserByID(context.Background(), res.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", stored.Password)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepository()
	seedUser(repo, "chef", "chef@example.com", "pass")
	service := NewUserService(repo, fakeJWT{})

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Username: "another",
		Email:    "chef@example.com",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := newFakeUserRepository()
	seedUser(repo, "chef", "chef@example.com", "pass")
	service := NewUserService(repo, fakeJWT{})

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Username: "chef",
		Email:    "other@example.com",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, domain.ErrUsernameAlreadyTaken)
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepository()
	seedUser(repo, "chef", "chef@example.com", "s3cret-pass")
	service := NewUserService(repo, fakeJWT{})

	res, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "chef@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "test-token", res.Token)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepository()
	seedUser(repo, "chef", "chef@example.com", "s3cret-pass")
	service := NewUserService(repo, fakeJWT{})

	_, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "chef@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, fakeJWT{})

	_, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestSetPasswordWrongCurrent(t *testing.T) {
	repo := newFakeUserRepository()
	user := seedUser(repo, "chef", "chef@example.com", "s3cret-pass")
	service := NewUserService(repo, fakeJWT{})

	err := service.SetPassword(context.Background(), domain.SetPasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "new-password",
	}, user.ID.String())
	assert.ErrorIs(t, err, domain.ErrPasswordNotMatch)
}

func TestSubscribeSelf(t *testing.T) {
	repo := newFakeUserRepository()
	user := seedUser(repo, "chef", "chef@example.com", "pass")
	service := NewUserService(repo, fakeJWT{})

	_, err := service.Subscribe(context.Background(), user.ID.String(), user.ID.String())
	assert.ErrorIs(t, err, domain.ErrSelfSubscription)
}

func TestSubscribeUnknownTarget(t *testing.T) {
	repo := newFakeUserRepository()
	user := seedUser(repo, "chef", "chef@example.com", "pass")
	service := NewUserService(repo, fakeJWT{})

	_, err := service.Subscribe(context.Background(), user.ID.String(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestSubscribeTwice(t *testing.T) {
	repo := newFakeUserRepository()
	subscriber := seedUser(repo, "reader", "reader@example.com", "pass")
	target := seedUser(repo, "chef", "chef@example.com", "pass")
	service := NewUserService(repo, fakeJWT{})

	_, err := service.Subscribe(context.Background(), subscriber.ID.String(), target.ID.String())
	require.NoError(t, err)

	_, err = service.Subscribe(context.Background(), subscriber.ID.String(), target.ID.String())
	assert.ErrorIs(t, err, domain.ErrAlreadySubscribed)
}

func TestSubscribeShapesResponse(t *testing.T) {
	repo := newFakeUserRepository()
	subscriber := seedUser(repo, "reader", "reader@example.com", "pass")
	target := seedUser(repo, "chef", "chef@example.com", "pass")
	for i := 0; i < 5; i++ {
		repo.recipes[target.ID.String()] = append(repo.recipes[target.ID.String()], &entities.Recipe{
			ID:          uuid.New(),
			AuthorID:    target.ID,
			Name:        "Recipe",
			CookingTime: 10,
		})
	}
	service := NewUserService(repo, fakeJWT{})

	res, err := service.Subscribe(context.Background(), subscriber.ID.String(), target.ID.String())
	require.NoError(t, err)

	assert.True(t, res.IsSubscribed)
	assert.Equal(t, 5, res.RecipesCount)
	assert.Len(t, res.Recipes, entities.SubscriptionRecipePreviews)
}

func TestUnsubscribeWithoutSubscription(t *testing.T) {
	repo := newFakeUserRepository()
	subscriber := seedUser(repo, "reader", "reader@example.com", "pass")
	target := seedUser(repo, "chef", "chef@example.com", "pass")
	service := NewUserService(repo, fakeJWT{})

	err := service.Unsubscribe(context.Background(), subscriber.ID.String(), target.ID.String())
	assert.ErrorIs(t, err, domain.ErrSubscriptionNotFound)
}

func TestGetSubscriptions(t *testing.T) {
	repo := newFakeUserRepository()
	subscriber := seedUser(repo, "reader", "reader@example.com", "pass")
	target := seedUser(repo, "chef", "chef@example.com", "pass")
	service := NewUserService(repo, fakeJWT{})

	_, err := service.Subscribe(context.Background(), subscriber.ID.String(), target.ID.String())
	require.NoError(t, err)

	subs, count, err := service.GetSubscriptions(context.Background(), subscriber.ID.String(), 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
	require.Len(t, subs, 1)
	assert.Equal(t, "chef", subs[0].Username)
	assert.True(t, subs[0].IsSubscribed)
}

func TestGetUserDetailSubscriptionQueryFailurePropagates(t *testing.T) {
	repo := newFakeUserRepository()
	viewer := seedUser(repo, "reader", "reader@example.com", "pass")
	target := seedUser(repo, "chef", "chef@example.com", "pass")
	repo.subscribedErr = errors.New("connection reset")
	service := NewUserService(repo, fakeJWT{})

	_, err := service.GetUserDetail(context.Background(), target.ID.String(), viewer.ID.String())
	assert.ErrorContains(t, err, "connection reset")

	// Anonymous lookups skip the subscription query entirely.
	res, err := service.GetUserDetail(context.Background(), target.ID.String(), "")
	require.NoError(t, err)
	assert.False(t, res.IsSubscribed)
}
