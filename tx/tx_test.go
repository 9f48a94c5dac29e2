package tx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWorkerTxRoundTrip(t *testing.T) {
	btx := &WorkerTx{
		Version: WorkerTxVersion1,
		Type:    WorkerTxTypeAddTspec,
		Nonce:   3,
		Signer:  "user.t",
		Tx: &AddTspecTx{
			Pool:     "app.sample",
			Proposal: 1,
			Data:     []byte("specification draft"),
			Terms: TspecTerms{
				SpecCost:      100,
				SpecEta:       3600,
				DevCost:       200,
				DevEta:        7200,
				PaymentsCount: 2,
			},
		},
		Sig: [][]byte{[]byte("sig")},
	}
	dat, err := MarshalWorkerTx(btx)
	require.NoError(t, err)

	got, err := UnmarshalWorkerTx(dat)
	require.NoError(t, err)
	require.Equal(t, btx.Version, got.Version)
	require.Equal(t, btx.Type, got.Type)
	require.Equal(t, btx.Nonce, got.Nonce)
	require.Equal(t, btx.Signer, got.Signer)
	require.Equal(t, btx.Sig, got.Sig)

	stx, ok := got.Tx.(*AddTspecTx)
	require.True(t, ok)
	require.Equal(t, btx.Tx.(*AddTspecTx), stx)
}

func TestUnmarshalWorkerTxUnknownType(t *testing.T) {
	_, err := UnmarshalWorkerTx([]byte(`{"type":255}`))
	require.ErrorIs(t, err, ErrUnsupportedTxType)

	_, err = UnmarshalWorkerTx([]byte(`not json`))
	require.ErrorIs(t, err, ErrUnsupportedTxType)
}

func TestSigDataExcludesSignature(t *testing.T) {
	btx := &WorkerTx{
		Version: WorkerTxVersion1,
		Type:    WorkerTxTypeWithdraw,
		Nonce:   1,
		Signer:  "user.w",
		Tx:      &WithdrawTx{Pool: "app.sample", Proposal: 1},
	}
	unsigned, err := btx.SigData([]byte("test-chain"))
	require.NoError(t, err)

	btx.Sig = [][]byte{[]byte("whatever")}
	signed, err := btx.SigData([]byte("test-chain"))
	require.NoError(t, err)
	require.Equal(t, unsigned, signed)

	other, err := btx.SigData([]byte("other-chain"))
	require.NoError(t, err)
	require.NotEqual(t, unsigned, other)
}
