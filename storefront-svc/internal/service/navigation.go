package service

import (
	"context"
	"strings"

	"foodcourt/session"
	"foodcourt/storefront-svc/internal/domain"
)

type NavigationService struct {
	carts CartServiceInterface
	auth  AuthServiceInterface
}

func NewNavigationService(carts CartServiceInterface, auth AuthServiceInterface) *NavigationService {
	return &NavigationService{carts: carts, auth: auth}
}

// Header builds the navigation for path. Owners get the dashboard links only
// while they are on dashboard pages.
func (s *NavigationService) Header(ctx context.Context, sess Session, path string) domain.Header {
	role := sess.Role(ctx)
	header := domain.Header{
		Role:     string(role),
		UserName: sess.Name(ctx),
		DarkMode: s.auth.DarkMode(ctx, sess),
	}

	if role == session.RoleOwner && strings.HasPrefix(path, "/owner-dashboard") {
		header.Links = append([]domain.NavLink(nil), domain.OwnerLinks...)
		return header
	}

	header.Links = append([]domain.NavLink(nil), domain.CustomerLinks...)
	if sess.IsAuthenticated(ctx) {
		header.Links = append(header.Links,
			domain.NavLink{Href: "#", Label: "Hi, " + header.UserName, Greeting: true},
			domain.NavLink{Href: "/checkout", Label: "Checkout"},
		)
	} else {
		header.Links = append(header.Links, domain.NavLink{Href: "/login", Label: "Login"})
	}

	if role == session.RoleCustomer {
		header.ShowCart = true
		header.CartCount = s.carts.Cart(ctx, sess).ItemCount()
	}
	return header
}
