package httphandler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math/big"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/essienricch/Nft-Creator-Haven/common"
	"github.com/essienricch/Nft-Creator-Haven/modules/platform/entity"
	"github.com/essienricch/Nft-Creator-Haven/modules/platform/usecase"
	"github.com/essienricch/Nft-Creator-Haven/pkg/middleware/errorhandler"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testCreator = ethcommon.HexToAddress("0x00000000000000000000000000000000000000aa")
	testTxHash  = ethcommon.HexToHash("0x01")
)

type stubLedger struct {
	assets       []entity.AssetRecord
	stats        entity.CreatorStats
	reward       *big.Int
	mintEvents   []entity.MintEvent
	rewardEvents []entity.RewardEvent
	receipt      *entity.MintReceipt
	mintErr      error
}

func (l *stubLedger) GetAllAssets(_ context.Context) ([]entity.AssetRecord, error) {
	return l.assets, nil
}

func (l *stubLedger) GetTokenBalance(_ context.Context, _ ethcommon.Address) (*big.Int, error) {
	return l.stats.TokenBalance, nil
}

func (l *stubLedger) GetCreatorStats(_ context.Context, _ ethcommon.Address) (entity.CreatorStats, error) {
	return l.stats, nil
}

func (l *stubLedger) GetCreatorReward(_ context.Context) (*big.Int, error) {
	return l.reward, nil
}

func (l *stubLedger) GetMintEvents(_ context.Context, _ *ethcommon.Address, _, _ uint64) ([]entity.MintEvent, error) {
	return l.mintEvents, nil
}

func (l *stubLedger) GetRewardEvents(_ context.Context, _ *ethcommon.Address, _, _ uint64) ([]entity.RewardEvent, error) {
	return l.rewardEvents, nil
}

func (l *stubLedger) Mint(_ context.Context, _ ethcommon.Address, _ string) (*entity.MintReceipt, error) {
	return l.receipt, l.mintErr
}

type stubStorage struct {
	docs map[string]entity.ContentDescriptor
}

func (s *stubStorage) StoreFile(_ context.Context, _ []byte, _ string) (string, error) {
	return "store://media", nil
}

func (s *stubStorage) StoreJSON(_ context.Context, _ any) (string, error) {
	return "store://metadata", nil
}

func (s *stubStorage) FetchJSON(_ context.Context, locator string, out any) error {
	doc, ok := s.docs[locator]
	if !ok {
		return errors.Errorf("no document at %q", locator)
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(json.Unmarshal(body, out))
}

type stubAgent struct{}

func (stubAgent) ActiveAccount(_ context.Context) (ethcommon.Address, error) {
	return testCreator, nil
}
func (stubAgent) RequestAccess(_ context.Context) error                      { return nil }
func (stubAgent) SwitchNetwork(_ context.Context, _ common.Network) error    { return nil }
func (stubAgent) OnAccountChange(_ func(ethcommon.Address)) func()           { return func() {} }
func (stubAgent) SignTx(_ context.Context, tx *types.Transaction, _ *big.Int) (*types.Transaction, error) {
	return tx, nil
}

func newTestApp(ledger *stubLedger, storage *stubStorage) *fiber.App {
	u := usecase.New(ledger, storage, stubAgent{}, common.NetworkLiskSepolia)
	handler := New(common.NetworkLiskSepolia, u)

	app := fiber.New()
	app.Use(errorhandler.New())
	_ = handler.Mount(app)
	return app
}

func decodeResult(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var envelope struct {
		Error  *string        `json:"error"`
		Result map[string]any `json:"result"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	require.Nil(t, envelope.Error)
	return envelope.Result
}

func TestGetAssetsEndpoint(t *testing.T) {
	ledger := &stubLedger{assets: []entity.AssetRecord{
		{ID: 1, Owner: testCreator, Creator: testCreator, ContentLocator: "store://1"},
		{ID: 2, Owner: testCreator, Creator: testCreator, ContentLocator: "store://missing"},
	}}
	storage := &stubStorage{docs: map[string]entity.ContentDescriptor{
		"store://1": {Name: "First", Description: "one", Image: "store://img1"},
	}}
	app := newTestApp(ledger, storage)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/v1/assets", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := decodeResult(t, resp)
	list, ok := result["list"].([]any)
	require.True(t, ok)
	require.Len(t, list, 2)

	first := list[0].(map[string]any)
	assert.Equal(t, float64(1), first["id"])
	assert.Equal(t, "First", first["name"])
	assert.Equal(t, true, first["metadataAvailable"])

	degraded := list[1].(map[string]any)
	assert.Equal(t, "Asset #2", degraded["name"])
	assert.Equal(t, entity.PlaceholderDescription, degraded["description"])
	assert.Equal(t, entity.PlaceholderImage, degraded["image"])
	assert.Equal(t, false, degraded["metadataAvailable"])
}

func TestGetCreatorStatsEndpoint(t *testing.T) {
	t.Run("returns raw and display amounts", func(t *testing.T) {
		ledger := &stubLedger{stats: entity.CreatorStats{
			AssetCount:         3,
			TotalRewardsEarned: new(big.Int).Mul(big.NewInt(3), big.NewInt(1e18)),
			TokenBalance:       new(big.Int).Mul(big.NewInt(2), big.NewInt(1e18)),
		}}
		app := newTestApp(ledger, &stubStorage{})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/v1/creators/"+testCreator.Hex()+"/stats", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		result := decodeResult(t, resp)
		assert.Equal(t, float64(3), result["assetCount"])
		rewards := result["totalRewardsEarned"].(map[string]any)
		assert.Equal(t, "3000000000000000000", rewards["raw"])
		assert.Equal(t, "3", rewards["display"])
		balance := result["tokenBalance"].(map[string]any)
		assert.Equal(t, "2", balance["display"])
	})

	t.Run("invalid address is a bad request", func(t *testing.T) {
		app := newTestApp(&stubLedger{}, &stubStorage{})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/v1/creators/not-an-address/stats", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetMintHistoryEndpoint(t *testing.T) {
	ledger := &stubLedger{mintEvents: []entity.MintEvent{
		{AssetID: 1, Creator: testCreator, Owner: testCreator, RewardAmount: big.NewInt(1e18), TxHash: testTxHash, BlockNumber: 10},
		{AssetID: 2, Creator: testCreator, Owner: testCreator, RewardAmount: big.NewInt(1e18), TxHash: testTxHash, BlockNumber: 20},
	}}
	app := newTestApp(ledger, &stubStorage{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/v1/creators/"+testCreator.Hex()+"/mints", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := decodeResult(t, resp)
	list := result["list"].([]any)
	require.Len(t, list, 2)

	// Newest block first
	newest := list[0].(map[string]any)
	assert.Equal(t, float64(20), newest["blockNumber"])
	assert.Equal(t, "https://sepolia-blockscout.lisk.com/tx/"+testTxHash.Hex(), newest["transactionExplorerUrl"])
}

func TestGetRewardConstantEndpoint(t *testing.T) {
	ledger := &stubLedger{reward: new(big.Int).Mul(big.NewInt(2), big.NewInt(1e18))}
	app := newTestApp(ledger, &stubStorage{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/v1/rewards/constant", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := decodeResult(t, resp)
	reward := result["rewardPerMint"].(map[string]any)
	assert.Equal(t, "2000000000000000000", reward["raw"])
	assert.Equal(t, "2", reward["display"])
}

func TestMintEndpoint(t *testing.T) {
	buildMintRequest := func(t *testing.T, withMedia bool) *http.Request {
		t.Helper()
		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		require.NoError(t, writer.WriteField("name", "Sunset"))
		require.NoError(t, writer.WriteField("description", "A view"))
		if withMedia {
			part, err := writer.CreateFormFile("media", "sunset.png")
			require.NoError(t, err)
			_, err = part.Write([]byte("image bytes"))
			require.NoError(t, err)
		}
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/v1/mints", &buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		return req
	}

	t.Run("full mint session", func(t *testing.T) {
		ledger := &stubLedger{
			receipt: &entity.MintReceipt{
				TxHash:      testTxHash,
				BlockNumber: 12,
				Events: []entity.MintEvent{{
					AssetID: 7, Creator: testCreator, Owner: testCreator, TxHash: testTxHash,
				}},
			},
			reward: new(big.Int).Mul(big.NewInt(2), big.NewInt(1e18)),
		}
		app := newTestApp(ledger, &stubStorage{})

		resp, err := app.Test(buildMintRequest(t, true), -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		result := decodeResult(t, resp)
		assert.Equal(t, string(entity.StatusMinted), result["status"])
		assert.Equal(t, float64(7), result["assetId"])
		assert.Equal(t, testTxHash.Hex(), result["transactionHash"])
		assert.Equal(t, "store://metadata", result["contentLocator"])
		assert.Equal(t, "store://media", result["mediaLocator"])
		assert.Equal(t, "2000000000000000000", result["rewardAmount"])
		assert.Equal(t, "2", result["rewardAmountDisplay"])
	})

	t.Run("missing media is a bad request", func(t *testing.T) {
		app := newTestApp(&stubLedger{}, &stubStorage{})

		resp, err := app.Test(buildMintRequest(t, false), -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("confirmed receipt without mint event is a bad gateway", func(t *testing.T) {
		ledger := &stubLedger{
			receipt: &entity.MintReceipt{TxHash: testTxHash, BlockNumber: 12},
		}
		app := newTestApp(ledger, &stubStorage{})

		resp, err := app.Test(buildMintRequest(t, true), -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	})
}
