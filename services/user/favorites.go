package user

// AddFavorite adds a service to the user's favourites.
func (s *DefaultUserService) AddFavorite(userID, serviceID string) error {
	return s.Repo.AddFavorite(userID, serviceID)
}

// RemoveFavorite removes a service from the user's favourites.
func (s *DefaultUserService) RemoveFavorite(userID, serviceID string) error {
	return s.Repo.RemoveFavorite(userID, serviceID)
}

// ListFavorites returns the user's favourite service ids.
func (s *DefaultUserService) ListFavorites(userID string) ([]string, error) {
	u, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if u.Favorites == nil {
		return []string{}, nil
	}
	return u.Favorites, nil
}
