package server

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/IhaveDebt/smallworld/api/proto/annpb"
	"github.com/IhaveDebt/smallworld/internal/index"
	"github.com/IhaveDebt/smallworld/internal/metrics"
	"github.com/IhaveDebt/smallworld/internal/storage"
	"github.com/IhaveDebt/smallworld/pkg/vec"
)

// Server implements the gRPC VectorService.
//
// The index has no internal locking and its random source is consumed
// by searches as well as inserts, so every index call goes through one
// plain mutex.
type Server struct {
	annpb.UnimplementedVectorServiceServer

	mu  sync.Mutex
	idx *index.SmallWorld
	wal *storage.WAL
}

func NewServer(idx *index.SmallWorld, wal *storage.WAL) *Server {
	return &Server{
		idx: idx,
		wal: wal,
	}
}

// Insert appends the vector to the WAL, then to the index, and returns
// the assigned id. The WAL write comes first so a replayed log always
// contains at least everything the index acknowledged.
func (s *Server) Insert(ctx context.Context, req *annpb.InsertRequest) (*annpb.InsertResponse, error) {
	if len(req.Vector) == 0 {
		return nil, status.Error(codes.InvalidArgument, "empty vector")
	}

	v := vec.Vector(req.Vector)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.wal.WriteInsert(v); err != nil {
		slog.Error("WAL write failed", "error", err)
		return nil, status.Error(codes.Internal, "persistence failed")
	}

	id, err := s.idx.Add(v)
	if err != nil {
		if errors.Is(err, vec.ErrDimensionMismatch) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}

	metrics.InsertsTotal.Inc()
	metrics.IndexedVectors.Set(float64(s.idx.Len()))

	return &annpb.InsertResponse{Id: id}, nil
}

// Search runs an approximate k-nearest-neighbor query. Ef zero means
// the index's configured default.
func (s *Server) Search(ctx context.Context, req *annpb.SearchRequest) (*annpb.SearchResponse, error) {
	if len(req.Vector) == 0 {
		return nil, status.Error(codes.InvalidArgument, "empty query vector")
	}

	start := time.Now()

	s.mu.Lock()
	var (
		matches []index.Match
		err     error
	)
	if req.Ef == 0 {
		matches, err = s.idx.Search(vec.Vector(req.Vector), int(req.K))
	} else {
		matches, err = s.idx.SearchWithEf(vec.Vector(req.Vector), int(req.K), int(req.Ef))
	}
	s.mu.Unlock()

	if err != nil {
		metrics.SearchesTotal.WithLabelValues("error").Inc()
		if errors.Is(err, vec.ErrDimensionMismatch) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}

	metrics.SearchesTotal.WithLabelValues("ok").Inc()
	metrics.SearchDuration.Observe(time.Since(start).Seconds())

	pbMatches := make([]*annpb.SearchResponse_Match, len(matches))
	for i, m := range matches {
		pbMatches[i] = &annpb.SearchResponse_Match{
			Id:       m.ID,
			Distance: m.Distance,
		}
	}

	return &annpb.SearchResponse{Matches: pbMatches}, nil
}
