package hetznercloud

import (
	"context"
	"errors"
	"testing"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabulon-ext/molecule/internal/driver"
	platformhcloud "github.com/tabulon-ext/molecule/internal/platform/hcloud"
)

// fakeClient implements platformhcloud.Client for sanity check tests.
type fakeClient struct {
	validateErr   error
	validateCalls int
}

func (f *fakeClient) ValidateToken(_ context.Context) error {
	f.validateCalls++
	return f.validateErr
}

func (f *fakeClient) GetServerByName(_ context.Context, _ string) (*hcloud.Server, error) {
	return nil, nil
}

func (f *fakeClient) ListServersByLabel(_ context.Context, _ string) ([]*hcloud.Server, error) {
	return nil, nil
}

func newSanityDriver(t *testing.T, fake *fakeClient) *Driver {
	t.Helper()
	d, _ := newTestDriver(t, minimalScenario,
		WithClientFactory(func(_ string) platformhcloud.Client { return fake }))
	return d
}

func TestSanityChecks(t *testing.T) {
	t.Run("missing token is fatal", func(t *testing.T) {
		t.Setenv(platformhcloud.TokenEnv, "")
		fake := &fakeClient{}
		d := newSanityDriver(t, fake)

		err := d.SanityChecks(context.Background())
		require.Error(t, err)

		var fatal *driver.FatalError
		require.True(t, errors.As(err, &fatal))
		assert.Contains(t, fatal.Remediation, platformhcloud.TokenEnv)
		assert.Zero(t, fake.validateCalls)
	})

	t.Run("unusable API is fatal", func(t *testing.T) {
		t.Setenv(platformhcloud.TokenEnv, "test-token")
		fake := &fakeClient{validateErr: errors.New("401 unauthorized")}
		d := newSanityDriver(t, fake)

		err := d.SanityChecks(context.Background())
		require.Error(t, err)

		var fatal *driver.FatalError
		require.True(t, errors.As(err, &fatal))
		assert.Contains(t, err.Error(), "not usable")
	})

	t.Run("success marks state and short-circuits", func(t *testing.T) {
		t.Setenv(platformhcloud.TokenEnv, "test-token")
		fake := &fakeClient{}
		d := newSanityDriver(t, fake)

		require.NoError(t, d.SanityChecks(context.Background()))
		assert.True(t, d.st.SanityChecked())
		assert.Equal(t, 1, fake.validateCalls)

		// Second call performs no checks.
		require.NoError(t, d.SanityChecks(context.Background()))
		assert.Equal(t, 1, fake.validateCalls)
	})

	t.Run("short-circuits even without token once checked", func(t *testing.T) {
		t.Setenv(platformhcloud.TokenEnv, "test-token")
		fake := &fakeClient{}
		d := newSanityDriver(t, fake)
		require.NoError(t, d.SanityChecks(context.Background()))

		// State persists across calls; a now-missing token is not re-checked.
		t.Setenv(platformhcloud.TokenEnv, "")
		require.NoError(t, d.SanityChecks(context.Background()))
		assert.Equal(t, 1, fake.validateCalls)
	})
}
