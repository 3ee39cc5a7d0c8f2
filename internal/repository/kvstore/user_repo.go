package kvstore

import (
	"encoding/json"
	"fmt"

	"github.com/weallth/weallth-backend/internal/domain"
	"github.com/weallth/weallth-backend/internal/kv"
)

// UserRepository implements domain.UserRepository over a kv.Store. Users
// live in one JSON array under weallth_users; the most recent session is
// mirrored to weallth_token and weallth_current_user, matching the layout
// existing installations already carry.
type UserRepository struct {
	store kv.Store
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(store kv.Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) loadAll() ([]*domain.User, error) {
	raw, ok, err := r.store.Get(keyUsers)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageFault, err)
	}
	if !ok {
		return []*domain.User{}, nil
	}

	var users []*domain.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, fmt.Errorf("%w: corrupt user collection: %v", domain.ErrStorageFault, err)
	}
	return users, nil
}

func (r *UserRepository) saveAll(users []*domain.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageFault, err)
	}
	if err := r.store.Set(keyUsers, string(raw)); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageFault, err)
	}
	return nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*domain.User, error) {
	users, err := r.loadAll()
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// Create appends a new user to the registered-user collection
func (r *UserRepository) Create(user *domain.User) (*domain.User, error) {
	users, err := r.loadAll()
	if err != nil {
		return nil, err
	}
	for _, existing := range users {
		if existing.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	users = append(users, user)
	if err := r.saveAll(users); err != nil {
		return nil, err
	}
	return user, nil
}

// SaveSession records the most recent session
func (r *UserRepository) SaveSession(session *domain.Session) error {
	rawUser, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageFault, err)
	}
	if err := r.store.Set(keyToken, session.Token); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageFault, err)
	}
	if err := r.store.Set(keyCurrentUser, string(rawUser)); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageFault, err)
	}
	return nil
}

// CurrentSession returns the most recent session, or
// domain.ErrNotAuthenticated when none is stored
func (r *UserRepository) CurrentSession() (*domain.Session, error) {
	token, ok, err := r.store.Get(keyToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageFault, err)
	}
	if !ok || token == "" {
		return nil, domain.ErrNotAuthenticated
	}

	rawUser, ok, err := r.store.Get(keyCurrentUser)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageFault, err)
	}
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}

	var user domain.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		return nil, fmt.Errorf("%w: corrupt session record: %v", domain.ErrStorageFault, err)
	}
	return &domain.Session{Token: token, User: &user}, nil
}

// ClearSession removes the stored session
func (r *UserRepository) ClearSession() error {
	if err := r.store.Remove(keyToken); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageFault, err)
	}
	if err := r.store.Remove(keyCurrentUser); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageFault, err)
	}
	return nil
}

// Ensure UserRepository implements domain.UserRepository
var _ domain.UserRepository = (*UserRepository)(nil)
