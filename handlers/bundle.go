package handlers

import userRepo "lumea/database/repository/user"

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	Catalog *CatalogHandler
	Booking *BookingHandler
	User    *UserHandler
	Admin   *AdminHandler
	Storage *StorageHandler
}
