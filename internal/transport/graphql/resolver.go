package graphql

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/almasbek/forum-api/internal/domain"
	"github.com/almasbek/forum-api/internal/metrics"
	"github.com/almasbek/forum-api/internal/session"
	"github.com/almasbek/forum-api/internal/usecase"
	graphqlgo "github.com/graph-gophers/graphql-go"
)

// errInternal is the only message a system failure ever surfaces to a
// client; details stay in the logs.
var errInternal = errors.New("internal server error")

// Resolver is the root resolver. Identity comes exclusively from the
// session handle in the request context, never from request arguments.
type Resolver struct {
	auth   *usecase.AuthService
	logger *slog.Logger
}

func NewResolver(auth *usecase.AuthService, logger *slog.Logger) *Resolver {
	return &Resolver{
		auth:   auth,
		logger: logger.With("component", "graphql"),
	}
}

type usernamePasswordInput struct {
	Username string
	Password string
}

// Register creates a user and, on success, logs the new user in by binding
// the session before the response is returned.
func (r *Resolver) Register(ctx context.Context, args struct{ Options usernamePasswordInput }) (*userResponseResolver, error) {
	resp, err := r.auth.Register(ctx, domain.Credentials{
		Username: args.Options.Username,
		Password: args.Options.Password,
	})
	if err != nil {
		r.logger.ErrorContext(ctx, "register", "error", err)
		return nil, errInternal
	}

	if resp.User != nil {
		if err := r.bindSession(ctx, resp.User); err != nil {
			return nil, errInternal
		}
	}
	return &userResponseResolver{resp: resp}, nil
}

// Login verifies credentials and binds the session on success.
func (r *Resolver) Login(ctx context.Context, args struct{ Options usernamePasswordInput }) (*userResponseResolver, error) {
	resp, err := r.auth.Login(ctx, domain.Credentials{
		Username: args.Options.Username,
		Password: args.Options.Password,
	})
	if err != nil {
		r.logger.ErrorContext(ctx, "login", "error", err)
		return nil, errInternal
	}

	if resp.User != nil {
		if err := r.bindSession(ctx, resp.User); err != nil {
			return nil, errInternal
		}
	}
	return &userResponseResolver{resp: resp}, nil
}

// Logout destroys the server-side session and expires the cookie. Logging
// out without a session succeeds trivially.
func (r *Resolver) Logout(ctx context.Context) (bool, error) {
	s := session.FromContext(ctx)
	if s == nil {
		return true, nil
	}
	if err := s.Clear(ctx); err != nil {
		r.logger.ErrorContext(ctx, "logout", "error", err)
		return false, errInternal
	}
	return true, nil
}

// Me returns the user bound to the current session, or null when the
// request is unauthenticated. A session pointing at a deleted user reads
// as unauthenticated rather than an error.
func (r *Resolver) Me(ctx context.Context) (*userResolver, error) {
	userID, ok := session.UserIDFromContext(ctx)
	if !ok {
		return nil, nil
	}

	user, err := r.auth.Me(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil
		}
		r.logger.ErrorContext(ctx, "me", "error", err)
		return nil, errInternal
	}
	return &userResolver{u: user}, nil
}

func (r *Resolver) bindSession(ctx context.Context, user *domain.User) error {
	s := session.FromContext(ctx)
	if s == nil {
		// Only possible when the handler is mounted without the session
		// middleware, which is a wiring bug.
		r.logger.ErrorContext(ctx, "no session in request context")
		return errInternal
	}
	if err := s.Bind(ctx, user.ID); err != nil {
		r.logger.ErrorContext(ctx, "bind session", "error", err)
		return err
	}
	metrics.SessionsBoundTotal.Inc()
	return nil
}

// ---- field resolvers ----

type userResolver struct {
	u *domain.User
}

func (r *userResolver) ID() graphqlgo.ID {
	return graphqlgo.ID(r.u.ID.String())
}

func (r *userResolver) Username() string {
	return r.u.Username
}

func (r *userResolver) CreatedAt() string {
	return r.u.CreatedAt.UTC().Format(time.RFC3339)
}

func (r *userResolver) UpdatedAt() string {
	return r.u.UpdatedAt.UTC().Format(time.RFC3339)
}

type fieldErrorResolver struct {
	fe domain.FieldError
}

func (r *fieldErrorResolver) Field() string   { return r.fe.Field }
func (r *fieldErrorResolver) Message() string { return r.fe.Message }

type userResponseResolver struct {
	resp *domain.UserResponse
}

func (r *userResponseResolver) Errors() *[]*fieldErrorResolver {
	if len(r.resp.Errors) == 0 {
		return nil
	}
	out := make([]*fieldErrorResolver, 0, len(r.resp.Errors))
	for _, fe := range r.resp.Errors {
		out = append(out, &fieldErrorResolver{fe: fe})
	}
	return &out
}

func (r *userResponseResolver) User() *userResolver {
	if r.resp.User == nil {
		return nil
	}
	return &userResolver{u: r.resp.User}
}
