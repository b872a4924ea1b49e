package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"surveyku_backend/internals/configs"
	"surveyku_backend/internals/features/users/auth/dto"
	"surveyku_backend/internals/features/users/auth/model"
	helper "surveyku_backend/internals/helpers"
)

const accessTTLDefault = 24 * time.Hour

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

/* ==========================
   REGISTER
========================== */

// POST /api/auth/register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// cek duplikat dulu biar pesannya jelas, bukan error constraint mentah
	var count int64
	if err := ac.DB.Model(&model.UserModel{}).
		Where("username = ? OR email = ?", req.Username, req.Email).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa user")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Username atau email sudah terdaftar")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.PlainPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	roles, _ := sonic.Marshal([]string{"ROLE_USER"})
	user := model.UserModel{
		Username: strings.TrimSpace(req.Username),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: string(hash),
		Roles:    roles,
		Enabled:  true,
	}

	if err := ac.DB.Create(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan user")
	}

	return helper.JsonEntity(c, fiber.StatusCreated, user)
}

/* ==========================
   LOGIN
========================== */

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	err := ac.DB.
		Where("username = ? OR email = ?", req.Identifier, strings.ToLower(req.Identifier)).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Kredensial salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca user")
	}
	if !user.Enabled {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Kredensial salah")
	}

	token, err := issueAccessToken(&user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonEntity(c, fiber.StatusOK, dto.LoginResponse{Token: token})
}

/* ==========================
   ME
========================== */

// GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak ada di context")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Format user id tidak valid")
	}

	var user model.UserModel
	if err := ac.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	return helper.JsonEntity(c, fiber.StatusOK, user)
}

func issueAccessToken(user *model.UserModel) (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", errors.New("JWT_SECRET belum diset")
	}

	var roles []string
	_ = sonic.Unmarshal(user.Roles, &roles)

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":      user.ID.String(),
		"username": user.Username,
		"roles":    roles,
		"iat":      now.Unix(),
		"exp":      now.Add(accessTTLDefault).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}
