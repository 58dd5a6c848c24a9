package repositories

import (
	"encoding/json"
	"fmt"

	"booking-server/entities"
	"booking-server/kvstore"
)

// storedUser persists the credential that the User JSON tag keeps out of
// responses. Only this package sees the stored shape.
type storedUser struct {
	entities.User
	PasswordHash string `json:"passwordHash,omitempty"`
}

type userKvRepository struct {
	store kvstore.Store
}

func NewUserKvRepository(store kvstore.Store) UserRepository {
	return &userKvRepository{store: store}
}

func (r *userKvRepository) Create(user *entities.User) error {
	return r.put(user)
}

func (r *userKvRepository) GetByID(id string) (*entities.User, error) {
	raw, err := r.store.Get(kvstore.KindUsers, id)
	if err != nil {
		return nil, err
	}
	return decodeUser(raw)
}

func (r *userKvRepository) GetByEmail(email string) (*entities.User, error) {
	users, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].EmailEquals(email) {
			return &users[i], nil
		}
	}
	return nil, kvstore.ErrNotFound
}

func (r *userKvRepository) GetAll() ([]entities.User, error) {
	values, err := r.store.List(kvstore.KindUsers)
	if err != nil {
		return nil, err
	}
	users := make([]entities.User, 0, len(values))
	for _, raw := range values {
		u, err := decodeUser(raw)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, nil
}

func (r *userKvRepository) Update(user *entities.User) error {
	if _, err := r.store.Get(kvstore.KindUsers, user.ID); err != nil {
		return err
	}
	return r.put(user)
}

func (r *userKvRepository) put(user *entities.User) error {
	raw, err := json.Marshal(storedUser{User: *user, PasswordHash: user.PasswordHash})
	if err != nil {
		return fmt.Errorf("failed to encode user record: %w", err)
	}
	return r.store.Put(kvstore.KindUsers, user.ID, raw)
}

func decodeUser(raw []byte) (*entities.User, error) {
	var stored storedUser
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("failed to decode user record: %w", err)
	}
	u := stored.User
	u.PasswordHash = stored.PasswordHash
	return &u, nil
}
