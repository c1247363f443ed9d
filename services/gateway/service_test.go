package gateway

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/NilFoundation/ledger-gateway/common/logging"
	"github.com/NilFoundation/ledger-gateway/internal/ledger"
	"github.com/stretchr/testify/suite"
)

type ServiceTestSuite struct {
	suite.Suite

	ctx      context.Context
	cancel   context.CancelFunc
	listener net.Listener
	client   *http.Client
	baseUrl  string
}

func TestServiceSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctx, s.cancel = context.WithTimeout(context.Background(), time.Minute)

	var err error
	s.listener, err = net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)
	s.baseUrl = "http://" + s.listener.Addr().String()
	s.client = &http.Client{
		Transport: &http.Transport{DisableKeepAlives: true},
		Timeout:   5 * time.Second,
	}
}

func (s *ServiceTestSuite) TearDownTest() {
	s.cancel()
	s.client.CloseIdleConnections()
}

func (s *ServiceTestSuite) newService(resolve ResolveFunc) *Service {
	s.T().Helper()
	cfg := DefaultConfig()
	cfg.Endpoint = s.listener.Addr().String()
	service, err := NewService(cfg, resolve, logging.NewLogger("service_test"))
	s.Require().NoError(err)
	return service
}

func (s *ServiceTestSuite) serve(service *Service) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- service.Serve(s.ctx, s.listener)
	}()
	return done
}

func (s *ServiceTestSuite) status(path string) int {
	resp, err := s.client.Get(s.baseUrl + path)
	if err != nil {
		return 0
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode
}

func (s *ServiceTestSuite) wait(done <-chan error) error {
	select {
	case err := <-done:
		return err
	case <-time.After(30 * time.Second):
		s.FailNow("service did not stop")
		return nil
	}
}

func (s *ServiceTestSuite) Test_ServesAfterResolution() {
	release := make(chan struct{})
	fake := newFakeLedger()
	service := s.newService(func(ctx context.Context) (ledger.Contract, error) {
		select {
		case <-release:
			return fake, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	})
	done := s.serve(service)

	s.Require().Eventually(func() bool {
		return s.status("/balance/alice") == http.StatusServiceUnavailable
	}, 5*time.Second, 20*time.Millisecond)

	close(release)
	s.Require().Eventually(func() bool {
		return s.status("/balance/alice") == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)
	s.Equal(http.StatusOK, s.status("/"))

	s.cancel()
	s.Require().NoError(s.wait(done))
}

func (s *ServiceTestSuite) Test_ResolutionFailureStopsServer() {
	resolveErr := errors.New("deployment ran out of gas")
	service := s.newService(func(context.Context) (ledger.Contract, error) {
		return nil, resolveErr
	})

	err := s.wait(s.serve(service))
	s.Require().ErrorIs(err, resolveErr)
}

func (s *ServiceTestSuite) Test_ShutdownDuringResolution() {
	started := make(chan struct{})
	service := s.newService(func(ctx context.Context) (ledger.Contract, error) {
		close(started)
		<-ctx.Done()
		return nil, ctx.Err()
	})
	done := s.serve(service)

	<-started
	s.cancel()
	s.Require().NoError(s.wait(done))
}
