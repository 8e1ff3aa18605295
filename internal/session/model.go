package session

import (
	"multivendor-shop/internal/cart"
	"multivendor-shop/internal/user"
)

// Session is the per-client state behind the signed cookie. A zero UserID
// means nobody is logged in.
type Session struct {
	ID       string    `json:"id"`
	UserID   int64     `json:"user_id"`
	Username string    `json:"username"`
	Role     user.Role `json:"role"`
	Cart     cart.Cart `json:"cart"`
	Flashes  []string  `json:"flashes,omitempty"`
}

func (s *Session) Authenticated() bool {
	return s != nil && s.UserID != 0
}

func (s *Session) HasRole(roles ...user.Role) bool {
	if !s.Authenticated() {
		return false
	}
	for _, r := range roles {
		if s.Role == r {
			return true
		}
	}
	return false
}

// login binds the user. The cart collected before logging in is kept.
func (s *Session) login(u *user.User) {
	s.UserID = u.ID
	s.Username = u.Username
	s.Role = u.Role
}

func (s *Session) AddFlash(msg string) {
	s.Flashes = append(s.Flashes, msg)
}

// PopFlashes returns the queued messages and empties the queue.
func (s *Session) PopFlashes() []string {
	f := s.Flashes
	s.Flashes = nil
	return f
}

func (s *Session) AddToCart(productID int64) {
	s.Cart = s.Cart.Add(productID)
}

// ClearCart removes the cart key entirely.
func (s *Session) ClearCart() {
	s.Cart = nil
}

func (s *Session) clone() *Session {
	c := *s
	if s.Cart != nil {
		c.Cart = append(cart.Cart{}, s.Cart...)
	}
	if s.Flashes != nil {
		c.Flashes = append([]string{}, s.Flashes...)
	}
	return &c
}
