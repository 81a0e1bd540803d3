package graph_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Aaditya-Golash/elections-doc-explorer/internal/disbursement"
	"github.com/Aaditya-Golash/elections-doc-explorer/internal/graph"
)

func TestService_Build(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := graph.NewMockRepository(ctrl)
	btx := graph.NewMockBuildTx(ctrl)
	svc := graph.NewService(repo)

	raws := []disbursement.Raw{
		{CommitteeName: "ABC PAC", PayeeLastName: "Acme Media", EntityType: "ORG", AmountCents: 10000, AmountValid: true},
	}
	records := []disbursement.Normalized{
		{CommitteeID: "C001", CommitteeName: "ABC PAC", PayeeName: "Acme Media", EntityType: "ORG", AmountCents: 10000},
	}

	committeeID := uuid.New()
	payeeID := uuid.New()

	repo.EXPECT().BeginBuild(gomock.Any()).Return(btx, nil)
	btx.EXPECT().Reset(gomock.Any()).Return(nil)
	btx.EXPECT().InsertDisbursement(gomock.Any(), raws[0]).Return(nil)
	btx.EXPECT().UpsertEntity(gomock.Any(), "ABC PAC", graph.EntityCommittee, gomock.Nil()).Return(committeeID, nil)
	btx.EXPECT().UpsertEntity(gomock.Any(), "Acme Media", graph.EntityCompany, gomock.Nil()).Return(payeeID, nil)
	btx.EXPECT().InsertEdge(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, edge *graph.Edge) error {
		assert.Equal(t, committeeID, edge.SourceID)
		assert.Equal(t, payeeID, edge.TargetID)
		assert.Equal(t, graph.RelationSpendsTo, edge.Relation)
		assert.Equal(t, int64(10000), edge.TotalCents)
		return nil
	})
	btx.EXPECT().Commit().Return(nil)
	btx.EXPECT().Rollback().Return(nil)

	result, err := svc.Build(context.Background(), raws, records)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Disbursements)
	assert.Equal(t, 2, result.Entities)
	assert.Equal(t, 1, result.Edges)
}

func TestService_Build_AbortsOnStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := graph.NewMockRepository(ctrl)
	btx := graph.NewMockBuildTx(ctrl)
	svc := graph.NewService(repo)

	records := []disbursement.Normalized{
		{CommitteeName: "ABC PAC", PayeeName: "Acme", EntityType: "ORG", AmountCents: 100},
	}

	repo.EXPECT().BeginBuild(gomock.Any()).Return(btx, nil)
	btx.EXPECT().Reset(gomock.Any()).Return(nil)
	btx.EXPECT().UpsertEntity(gomock.Any(), "ABC PAC", graph.EntityCommittee, gomock.Nil()).
		Return(uuid.Nil, errors.New("constraint violation"))
	btx.EXPECT().Rollback().Return(nil)

	_, err := svc.Build(context.Background(), nil, records)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ABC PAC")
}

func TestService_ResolveEntities_FirstWriterWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := graph.NewMockRepository(ctrl)
	btx := graph.NewMockBuildTx(ctrl)
	svc := graph.NewService(repo)

	// "Shared Name" appears both as a committee and as a payee. The store
	// upsert keeps the committee row and returns its id for both calls.
	records := []disbursement.Normalized{
		{CommitteeName: "Shared Name", PayeeName: "Shared Name", EntityType: "ORG", AmountCents: 100},
	}

	id := uuid.New()

	btx.EXPECT().UpsertEntity(gomock.Any(), "Shared Name", graph.EntityCommittee, gomock.Nil()).Return(id, nil)
	btx.EXPECT().UpsertEntity(gomock.Any(), "Shared Name", graph.EntityCompany, gomock.Nil()).Return(id, nil)

	ids, err := svc.ResolveEntities(context.Background(), btx, records)
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.Equal(t, id, ids["Shared Name"])
}

func TestService_BuildEdges_SkipsUnresolvable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := graph.NewMockRepository(ctrl)
	btx := graph.NewMockBuildTx(ctrl)
	svc := graph.NewService(repo)

	records := []disbursement.Normalized{
		{CommitteeName: "ABC PAC", PayeeName: "Unknown Payee", AmountCents: 100},
	}
	ids := graph.NameToID{"ABC PAC": uuid.New()}

	// No InsertEdge expectation: the unresolved pair must be skipped
	// without error.
	inserted, err := svc.BuildEdges(context.Background(), btx, records, ids)
	require.NoError(t, err)
	assert.Zero(t, inserted)
}

func TestService_Graph(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := graph.NewMockRepository(ctrl)
	svc := graph.NewService(repo)

	t.Run("NodesAndLinks", func(t *testing.T) {
		a := graph.Node{ID: uuid.New(), Name: "ABC PAC", Type: graph.EntityCommittee, TotalOutCents: 15000}
		b := graph.Node{ID: uuid.New(), Name: "Acme Media", Type: graph.EntityCompany, TotalInCents: 15000}
		link := graph.Link{ID: uuid.New(), SourceID: a.ID, TargetID: b.ID, TotalCents: 15000}

		repo.EXPECT().TopEntities(gomock.Any(), 150).Return([]graph.Node{a, b}, nil)
		repo.EXPECT().LinksAmong(gomock.Any(), []uuid.UUID{a.ID, b.ID}).Return([]graph.Link{link}, nil)

		view, err := svc.Graph(context.Background(), 150)
		require.NoError(t, err)
		assert.Len(t, view.Nodes, 2)
		assert.Len(t, view.Links, 1)
	})

	t.Run("EmptyGraph", func(t *testing.T) {
		repo.EXPECT().TopEntities(gomock.Any(), 10).Return(nil, nil)

		view, err := svc.Graph(context.Background(), 10)
		require.NoError(t, err)
		assert.Empty(t, view.Nodes)
		assert.Empty(t, view.Links)
	})
}
