package commands

import (
	"context"

	"github.com/google/uuid"

	"hotelcore/internal/domain/user"
	reqdto "hotelcore/internal/handler/dto/request"
	"hotelcore/internal/infra"
	"hotelcore/internal/pkg/errs"
	"hotelcore/internal/pkg/jwt"
	"hotelcore/internal/pkg/password"
	"hotelcore/internal/usecase/queries"
	"hotelcore/internal/usecase/shared"
)

var (
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	User        *queries.AuthorizedUserView
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	Register(ctx context.Context, req reqdto.RegisterRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	view, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		return nil, errs.ErrInvalidCredentials
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	return a.issueToken(view)
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	newUser := user.NewUser(credentials.Email(), req.Name, hash, user.RoleGuest)

	var userID uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Users().Create(ctx, tx.DB(), newUser)
		if createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return errs.ErrEmailAlreadyUsed
			}
			return errs.Mark(createErr, errs.ErrDatabaseOperationFailed)
		}
		userID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := a.readStore.FindByID(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return a.issueToken(view)
}

func (a *authCommandsImpl) issueToken(view *queries.AuthorizedUserView) (*LoginResult, error) {
	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{User: view, AccessToken: token}, nil
}
