package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/customs"
	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewSubmitCustomsDocumentsCommand(t *testing.T) {
	t.Run("should reject an empty document list", func(t *testing.T) {
		_, err := commands.NewSubmitCustomsDocumentsCommand(kernel.NewUUID(), nil)

		require.ErrorIs(t, err, commands.ErrDocumentListIsRequired)
	})

	t.Run("should fail validation when not constructed", func(t *testing.T) {
		var cmd commands.SubmitCustomsDocumentsCommand

		require.Error(t, cmd.Validate())
	})
}

func TestSubmitCustomsDocumentsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customsCase := releasedCase(t)
	require.NoError(t, customsCase.RequestDocuments([]string{"commercial invoice"}))

	cmd, err := commands.NewSubmitCustomsDocumentsCommand(
		customsCase.ID(), []string{"commercial invoice"})
	require.NoError(t, err)

	repo := new(MockCustomsCaseRepository)
	uow := new(MockCustomsUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomsCaseRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, customsCase.ID()).Return(customsCase, nil).Once(),
		repo.On("Update", mock.Anything, customsCase).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomsUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitCustomsDocumentsCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, customs.Pending, customsCase.SubStatus())
	assert.Equal(t, []string{"commercial invoice"}, customsCase.SubmittedDocuments())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSubmitCustomsDocumentsCommandHandler_Handle_WithoutRequest(t *testing.T) {
	ctx := t.Context()
	customsCase := releasedCase(t)
	cmd, err := commands.NewSubmitCustomsDocumentsCommand(
		customsCase.ID(), []string{"commercial invoice"})
	require.NoError(t, err)

	repo := new(MockCustomsCaseRepository)
	uow := new(MockCustomsUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomsCaseRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, customsCase.ID()).Return(customsCase, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomsUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitCustomsDocumentsCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, customs.ErrWorkflowViolation)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
