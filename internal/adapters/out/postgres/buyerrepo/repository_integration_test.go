package buyerrepo_test

import (
	"context"
	"testing"
	"time"

	"checkout/internal/adapters/out/postgres/buyerrepo"
	"checkout/internal/core/domain/model/buyer"
	"checkout/internal/core/domain/model/identity"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type BuyerRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *buyerrepo.GormBuyerRepository
}

func (suite *BuyerRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&buyerrepo.BuyerDTO{}))
}

func (suite *BuyerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE buyers").Error)
	suite.repository = buyerrepo.NewGormBuyerRepository(suite.db, noopTracker{})
}

func (suite *BuyerRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *BuyerRepositoryIntegrationTestSuite) TestAdd_ThenGet() {
	ctx := context.Background()
	b := suite.newBuyer("ana@example.com")

	suite.Require().NoError(suite.repository.Add(ctx, b))

	got, err := suite.repository.Get(ctx, b.ID())
	suite.Require().NoError(err)
	suite.Equal("ana@example.com", got.Email().String())
	suite.Equal("Ana", got.FirstName())
	suite.Equal(b.PasswordHash(), got.PasswordHash())
	suite.Equal(b.CreatedAt(), got.CreatedAt())
	_, hasRut := got.NationalID()
	suite.False(hasRut)
}

func (suite *BuyerRepositoryIntegrationTestSuite) TestAdd_DuplicateEmail_IsNotUnique() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newBuyer("ana@example.com")))

	err := suite.repository.Add(ctx, suite.newBuyer("ANA@example.com"))

	suite.Require().ErrorIs(err, errs.ErrValueIsNotUnique)
}

func (suite *BuyerRepositoryIntegrationTestSuite) TestUpdate_StoresProfileAndFindsByNationalID() {
	ctx := context.Background()
	b := suite.newBuyer("ana@example.com")
	suite.Require().NoError(suite.repository.Add(ctx, b))

	rut, err := identity.ParseNationalID("12.345.678-5")
	suite.Require().NoError(err)
	phone, err := identity.ParsePhone("+56 9 8765 4321")
	suite.Require().NoError(err)
	b.UpdateProfile("Ana María", "", &rut, &phone, time.Now())
	suite.Require().NoError(suite.repository.Update(ctx, b))

	got, err := suite.repository.FindByNationalID(ctx, rut)
	suite.Require().NoError(err)
	suite.True(got.ID().IsEqual(b.ID()))
	suite.Equal("Ana María", got.FirstName())
	suite.Equal("Pérez", got.LastName())
	storedPhone, ok := got.Phone()
	suite.Require().True(ok)
	suite.Equal("+56987654321", storedPhone.String())
}

func (suite *BuyerRepositoryIntegrationTestSuite) TestUpdate_NationalIDTakenByAnotherBuyer() {
	ctx := context.Background()
	rut, err := identity.ParseNationalID("12345678-5")
	suite.Require().NoError(err)

	first := suite.newBuyer("ana@example.com")
	first.UpdateProfile("", "", &rut, nil, time.Now())
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.newBuyer("luis@example.com")
	suite.Require().NoError(suite.repository.Add(ctx, second))
	second.UpdateProfile("", "", &rut, nil, time.Now())

	err = suite.repository.Update(ctx, second)

	var notUnique *errs.ValueIsNotUniqueError
	suite.Require().ErrorAs(err, &notUnique)
	suite.Equal("rut", notUnique.ParamName)
}

func (suite *BuyerRepositoryIntegrationTestSuite) TestFindByEmail() {
	ctx := context.Background()
	b := suite.newBuyer("ana@example.com")
	suite.Require().NoError(suite.repository.Add(ctx, b))

	email, err := identity.ParseEmail("Ana@Example.com")
	suite.Require().NoError(err)
	got, err := suite.repository.FindByEmail(ctx, email)

	suite.Require().NoError(err)
	suite.True(got.ID().IsEqual(b.ID()))
}

func (suite *BuyerRepositoryIntegrationTestSuite) TestLookups_NotFound() {
	ctx := context.Background()
	rut, err := identity.ParseNationalID("11.111.111-1")
	suite.Require().NoError(err)
	email, err := identity.ParseEmail("nadie@example.com")
	suite.Require().NoError(err)

	_, err = suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = suite.repository.FindByNationalID(ctx, rut)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = suite.repository.FindByEmail(ctx, email)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Require().ErrorIs(suite.repository.Update(ctx, suite.newBuyer("x@example.com")), errs.ErrObjectNotFound)
}

func (suite *BuyerRepositoryIntegrationTestSuite) newBuyer(rawEmail string) *buyer.Buyer {
	email, err := identity.ParseEmail(rawEmail)
	suite.Require().NoError(err)
	b, err := buyer.NewBuyer(kernel.NewUUID(), email, "Ana", "Pérez", "$2a$10$hash", time.Now())
	suite.Require().NoError(err)
	return b
}

func TestBuyerRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test requires docker")
	}
	suite.Run(t, new(BuyerRepositoryIntegrationTestSuite))
}
