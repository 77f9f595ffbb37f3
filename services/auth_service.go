package services

import (
	"context"
	"errors"
	"time"

	"eduhub/config"
	"eduhub/database"
	"eduhub/models"
	"eduhub/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrAccountInactive    = errors.New("account is deactivated")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthService struct {
	userCollection *mongo.Collection
	identityCache  *IdentityCache
}

func NewAuthService() *AuthService {
	ttl := 5 * time.Minute
	if config.AppConfig != nil {
		ttl = config.AppConfig.IdentityTTL
	}
	return &AuthService{
		userCollection: database.GetCollection(database.UsersCollection),
		identityCache:  NewIdentityCache(database.GetRedis(), ttl),
	}
}

// Register creates a new account. New accounts start as students;
// moderator and admin roles are assigned out of band.
func (as *AuthService) Register(req *models.RegisterRequest) (*models.AuthResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := as.userCollection.CountDocuments(ctx, bson.M{"email": req.Email})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:        primitive.NewObjectID(),
		FullName:  req.FullName,
		Email:     req.Email,
		Password:  string(hash),
		Role:      models.RoleStudent,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := as.userCollection.InsertOne(ctx, user); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.FullName, user.Role)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: user}, nil
}

// Login verifies credentials and issues a session token.
func (as *AuthService) Login(req *models.LoginRequest) (*models.AuthResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err := as.userCollection.FindOne(ctx, bson.M{"email": req.Email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrAccountInactive
	}

	now := time.Now()
	_, _ = as.userCollection.UpdateOne(ctx,
		bson.M{"_id": user.ID},
		bson.M{"$set": bson.M{"last_login_at": now, "updated_at": now}},
	)

	token, err := utils.GenerateToken(user.ID, user.Email, user.FullName, user.Role)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: &user}, nil
}

// GetUserByID resolves the identity behind a validated token, serving
// from the Redis cache when possible.
func (as *AuthService) GetUserByID(userID primitive.ObjectID) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if cached := as.identityCache.Get(ctx, userID.Hex()); cached != nil {
		cached.ID = userID
		return cached, nil
	}

	var user models.User
	err := as.userCollection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	as.identityCache.Set(ctx, userID.Hex(), &user)
	return &user, nil
}

// SetRole changes a user's role and invalidates the cached identity.
func (as *AuthService) SetRole(userID primitive.ObjectID, role string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	switch role {
	case models.RoleGuest, models.RoleStudent, models.RoleModerator, models.RoleAdmin:
	default:
		return errors.New("unknown role: " + role)
	}

	res, err := as.userCollection.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"role": role, "updated_at": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}

	as.identityCache.Invalidate(ctx, userID.Hex())
	return nil
}
