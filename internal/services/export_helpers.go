package services

import (
	"context"
	"strings"

	"wedplan/internal/repositories"
)

func lookupNames[T repositories.LookupEntity](ctx context.Context, repo *repositories.LookupRepository[T]) (map[uint]string, error) {
	items, err := repo.GetAll(ctx, 0, -1)
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(items))
	for _, item := range items {
		names[item.GetID()] = item.GetName()
	}
	return names, nil
}

// userNames maps user ids to a display name, falling back to the email
// address when no name is set.
func userNames(ctx context.Context, repo repositories.UserRepository) (map[uint]string, error) {
	users, err := repo.GetAll(ctx, 0, -1)
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(users))
	for _, u := range users {
		name := strings.TrimSpace(strDeref(u.FirstName) + " " + strDeref(u.LastName))
		if name == "" {
			name = u.Email
		}
		names[u.ID] = name
	}
	return names, nil
}

func nameFor(names map[uint]string, id uint) string {
	return names[id]
}

func nameForPtr(names map[uint]string, id *uint) string {
	if id == nil {
		return ""
	}
	return names[*id]
}

func strDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
