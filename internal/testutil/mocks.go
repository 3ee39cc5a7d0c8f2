package testutil

import (
	"github.com/weallth/weallth-backend/internal/domain"
)

// MockGoalRepository is a mock implementation of domain.GoalRepository
type MockGoalRepository struct {
	Collections map[string][]*domain.Goal
	LoadErr     error
	SaveErr     error
	SaveCalls   int
}

// NewMockGoalRepository creates a new MockGoalRepository
func NewMockGoalRepository() *MockGoalRepository {
	return &MockGoalRepository{
		Collections: make(map[string][]*domain.Goal),
	}
}

// Load returns the owner's collection
func (m *MockGoalRepository) Load(ownerID string) ([]*domain.Goal, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	goals := m.Collections[ownerID]
	// Copy so callers mutating the slice do not corrupt the stored state
	out := make([]*domain.Goal, len(goals))
	copy(out, goals)
	return out, nil
}

// Save overwrites the owner's collection
func (m *MockGoalRepository) Save(ownerID string, goals []*domain.Goal) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	stored := make([]*domain.Goal, len(goals))
	copy(stored, goals)
	m.Collections[ownerID] = stored
	return nil
}

// AddGoal seeds a goal into the owner's collection (helper for tests)
func (m *MockGoalRepository) AddGoal(goal *domain.Goal) {
	m.Collections[goal.UserID] = append(m.Collections[goal.UserID], goal)
}

// MockProfileRepository is a mock implementation of domain.ProfileRepository
type MockProfileRepository struct {
	Profiles map[string]*domain.UserProfile
	GetErr   error
	SaveErr  error
}

// NewMockProfileRepository creates a new MockProfileRepository
func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{
		Profiles: make(map[string]*domain.UserProfile),
	}
}

// Get retrieves the owner's profile
func (m *MockProfileRepository) Get(ownerID string) (*domain.UserProfile, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	profile, ok := m.Profiles[ownerID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return profile, nil
}

// Save replaces the owner's profile
func (m *MockProfileRepository) Save(ownerID string, profile *domain.UserProfile) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	stored := *profile
	m.Profiles[ownerID] = &stored
	return nil
}

// MockUserRepository is a mock implementation of domain.UserRepository
type MockUserRepository struct {
	Users   []*domain.User
	Session *domain.Session
}

// NewMockUserRepository creates a new MockUserRepository
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// GetByEmail retrieves a user by email
func (m *MockUserRepository) GetByEmail(email string) (*domain.User, error) {
	for _, user := range m.Users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// Create appends a user
func (m *MockUserRepository) Create(user *domain.User) (*domain.User, error) {
	for _, existing := range m.Users {
		if existing.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	m.Users = append(m.Users, user)
	return user, nil
}

// SaveSession records the most recent session
func (m *MockUserRepository) SaveSession(session *domain.Session) error {
	m.Session = session
	return nil
}

// CurrentSession returns the most recent session
func (m *MockUserRepository) CurrentSession() (*domain.Session, error) {
	if m.Session == nil {
		return nil, domain.ErrNotAuthenticated
	}
	return m.Session, nil
}

// ClearSession removes the stored session
func (m *MockUserRepository) ClearSession() error {
	m.Session = nil
	return nil
}

// MockFeedbackRepository is a mock implementation of domain.FeedbackRepository
type MockFeedbackRepository struct {
	Items     []*domain.Feedback
	AppendErr error
}

// NewMockFeedbackRepository creates a new MockFeedbackRepository
func NewMockFeedbackRepository() *MockFeedbackRepository {
	return &MockFeedbackRepository{}
}

// Append adds a feedback record
func (m *MockFeedbackRepository) Append(feedback *domain.Feedback) error {
	if m.AppendErr != nil {
		return m.AppendErr
	}
	m.Items = append(m.Items, feedback)
	return nil
}

// List returns all stored feedback
func (m *MockFeedbackRepository) List() ([]*domain.Feedback, error) {
	return m.Items, nil
}
