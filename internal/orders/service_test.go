package orders

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/marketconnect/marketconnect-backend/pkg/db/models"
	"github.com/marketconnect/marketconnect-backend/pkg/db/types"
	"github.com/marketconnect/marketconnect-backend/pkg/enums"
	pkgerrors "github.com/marketconnect/marketconnect-backend/pkg/errors"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gdb.AutoMigrate(&models.Vendor{}, &models.Order{}))
	svc, err := NewService(NewRepository(gdb))
	require.NoError(t, err)
	return svc
}

func validCreate() CreateOrderDTO {
	return CreateOrderDTO{
		VendorID: 1,
		Items: []types.OrderItem{
			{Name: "Onions", Quantity: 10, PricePerKg: 28.5, Subtotal: 285},
			{Name: "Potatoes", Quantity: 5, PricePerKg: 22, Subtotal: 110},
		},
		Subtotal:       395,
		Tax:            19.75,
		DeliveryCharge: 30,
		GroupDiscount:  0,
		TotalAmount:    444.75,
	}
}

func TestCreateMintsServerSideID(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	_, err = uuid.Parse(created.ID)
	require.NoError(t, err)

	assert.Equal(t, enums.OrderStatusPending, created.Status)
	assert.Equal(t, enums.PaymentStatusCompleted, created.PaymentStatus)
	assert.Equal(t, enums.PaymentMethodOnline, created.PaymentMethod)
	assert.Equal(t, enums.OrderTypeIndividual, created.OrderType)

	loaded, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, loaded.ID)
	assert.Len(t, loaded.Items, 2)
}

func TestCreateRejectsTotalMismatch(t *testing.T) {
	svc := newTestService(t)

	dto := validCreate()
	dto.TotalAmount = 500
	_, err := svc.Create(context.Background(), dto)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestCreateRejectsItemSubtotalMismatch(t *testing.T) {
	svc := newTestService(t)

	dto := validCreate()
	dto.Items[0].Subtotal = 300
	_, err := svc.Create(context.Background(), dto)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestCreateToleratesFloatNoise(t *testing.T) {
	svc := newTestService(t)

	dto := CreateOrderDTO{
		VendorID:    1,
		Items:       []types.OrderItem{{Name: "Onions", Quantity: 3, PricePerKg: 0.1, Subtotal: 0.3}},
		Subtotal:    0.1 + 0.2,
		TotalAmount: 0.1 + 0.2,
	}
	_, err := svc.Create(context.Background(), dto)
	require.NoError(t, err)
}

func TestCreateRejectsUnknownEnumLabels(t *testing.T) {
	svc := newTestService(t)

	dto := validCreate()
	dto.OrderType = "bulk"
	_, err := svc.Create(context.Background(), dto)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())

	dto = validCreate()
	dto.PaymentMethod = "cheque"
	_, err = svc.Create(context.Background(), dto)
	typed = pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestAcceptAssignsSupplierOnce(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	accepted, err := svc.Accept(ctx, created.ID, AcceptOrderDTO{SupplierID: 7})
	require.NoError(t, err)
	require.NotNil(t, accepted.SupplierID)
	assert.Equal(t, int64(7), *accepted.SupplierID)
	assert.Equal(t, enums.OrderStatusAccepted, accepted.Status)

	_, err = svc.Accept(ctx, created.ID, AcceptOrderDTO{SupplierID: 8})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeConflict, typed.Code())
}

func TestAcceptMissingOrderIsNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Accept(context.Background(), uuid.NewString(), AcceptOrderDTO{SupplierID: 7})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestConcurrentAcceptHasExactlyOneWinner(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			_, errs[slot] = svc.Accept(ctx, created.ID, AcceptOrderDTO{SupplierID: int64(slot + 1)})
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, e := range errs {
		if e == nil {
			wins++
		} else {
			typed := pkgerrors.As(e)
			require.NotNil(t, typed)
			assert.Equal(t, pkgerrors.CodeConflict, typed.Code())
		}
	}
	assert.Equal(t, 1, wins)

	final, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, final.SupplierID)
	assert.Equal(t, enums.OrderStatusAccepted, final.Status)
}

func TestUpdateStatusEnforcesTransitions(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	delivered := "delivered"
	_, err = svc.UpdateStatus(ctx, created.ID, UpdateOrderStatusDTO{Status: &delivered})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeStateConflict, typed.Code())

	accepted := "accepted"
	updated, err := svc.UpdateStatus(ctx, created.ID, UpdateOrderStatusDTO{Status: &accepted})
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusAccepted, updated.Status)

	updated, err = svc.UpdateStatus(ctx, created.ID, UpdateOrderStatusDTO{Status: &delivered})
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusDelivered, updated.Status)
}

func TestUpdateStatusPaymentAxisIsIndependent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	dto := validCreate()
	dto.PaymentStatus = "pending"
	created, err := svc.Create(ctx, dto)
	require.NoError(t, err)

	completed := "completed"
	updated, err := svc.UpdateStatus(ctx, created.ID, UpdateOrderStatusDTO{PaymentStatus: &completed})
	require.NoError(t, err)
	assert.Equal(t, enums.PaymentStatusCompleted, updated.PaymentStatus)
	assert.Equal(t, enums.OrderStatusPending, updated.Status)

	pending := "pending"
	_, err = svc.UpdateStatus(ctx, created.ID, UpdateOrderStatusDTO{PaymentStatus: &pending})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeStateConflict, typed.Code())
}

func TestUpdateStatusRequiresAField(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.UpdateStatus(context.Background(), uuid.NewString(), UpdateOrderStatusDTO{})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestDeleteMissingOrderIsNotFound(t *testing.T) {
	svc := newTestService(t)

	err := svc.Delete(context.Background(), uuid.NewString())
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}
