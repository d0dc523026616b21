//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"supplier-marketplace/internal/pkg/clock"
	"supplier-marketplace/internal/usecase/shared"
	sharedmock "supplier-marketplace/tests/mock/shared"
)

var fixedNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	ctrl      *gomock.Controller
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	users     *sharedmock.MockUserRepository
	companies *sharedmock.MockCompanyRepository
	contacts  *sharedmock.MockContactRepository
	surveys   *sharedmock.MockSurveyRepository
	grants    *sharedmock.MockGrantRepository
	publisher *sharedmock.MockEventPublisher
	clock     *clock.MockClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		ctrl:      ctrl,
		uow:       sharedmock.NewMockUnitOfWork(ctrl),
		tx:        sharedmock.NewMockTx(ctrl),
		users:     sharedmock.NewMockUserRepository(ctrl),
		companies: sharedmock.NewMockCompanyRepository(ctrl),
		contacts:  sharedmock.NewMockContactRepository(ctrl),
		surveys:   sharedmock.NewMockSurveyRepository(ctrl),
		grants:    sharedmock.NewMockGrantRepository(ctrl),
		publisher: sharedmock.NewMockEventPublisher(ctrl),
		clock:     clock.NewMockClock(fixedNow),
	}
	f.tx.EXPECT().Users().Return(f.users).AnyTimes()
	f.tx.EXPECT().Companies().Return(f.companies).AnyTimes()
	f.tx.EXPECT().Contacts().Return(f.contacts).AnyTimes()
	f.tx.EXPECT().Surveys().Return(f.surveys).AnyTimes()
	f.tx.EXPECT().Grants().Return(f.grants).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	return f
}

func (f *fixture) runTx(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
	return fn(ctx, f.tx)
}

func (f *fixture) expectWithDB(times int) {
	f.uow.EXPECT().WithDB(gomock.Any(), gomock.Any()).DoAndReturn(f.runTx).Times(times)
}

func (f *fixture) expectWithin(times int) {
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(f.runTx).Times(times)
}
