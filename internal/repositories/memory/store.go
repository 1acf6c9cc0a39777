package memory

// Store bundles one repository of each kind.
type Store struct {
	Listings      *ListingRepository
	Requests      *RequestRepository
	Notifications *NotificationRepository
	Feedback      *FeedbackRepository
	Users         *UserRepository
}

func NewStore() *Store {
	return &Store{
		Listings:      NewListingRepository(),
		Requests:      NewRequestRepository(),
		Notifications: NewNotificationRepository(),
		Feedback:      NewFeedbackRepository(),
		Users:         NewUserRepository(),
	}
}
