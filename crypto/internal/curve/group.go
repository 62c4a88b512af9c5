// Package curve compiles the curve-group registry this module's EC
// decoders match against: one entry per supported named curve, holding
// both its domain parameters and the elliptic.Curve that performs point
// arithmetic for it.
//
// crypto/elliptic supplies the four NIST curves directly. P-192 and the
// three Brainpool curves have no stdlib implementation, so they are backed
// by genericCurve, a big.Int engine generalized from sm2curve's affine
// arithmetic. SM2-P-256 keeps sm2curve's own optimized engine.
//
// Curve25519 is deliberately absent: it is Montgomery-form (y² = x³ + Ax² + x),
// not short-Weierstrass, so it has no (A, B) pair to compare against a
// SpecifiedECDomain the way every curve below does; it cannot be a
// registry entry under this package's own structural-match contract.
package curve

import (
	"crypto/elliptic"
	"math/big"

	"github.com/dromara/pkparse/crypto/internal/sm2curve"
)

// ID is the closed curve-group enumeration.
type ID string

const (
	None      ID = "NONE"
	SECP192R1 ID = "SECP192R1"
	SECP224R1 ID = "SECP224R1"
	SECP256R1 ID = "SECP256R1"
	SECP384R1 ID = "SECP384R1"
	SECP521R1 ID = "SECP521R1"
	BP256R1   ID = "BP256R1"
	BP384R1   ID = "BP384R1"
	BP512R1   ID = "BP512R1"
	SM2P256   ID = "SM2P256"
)

// Group is a fully resolved curve-group record: the domain parameters plus
// the concrete elliptic.Curve backing them.
type Group struct {
	ID           ID
	P, A, B, N   *big.Int
	Gx, Gy       *big.Int
	PBits, NBits int
	Curve        elliptic.Curve
}

var registry []*Group

func must(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("curve: bad constant " + s)
	}
	return n
}

func minus3(p *big.Int) *big.Int { return new(big.Int).Sub(p, big.NewInt(3)) }

func register(id ID, p, a, b, gx, gy, n *big.Int, c elliptic.Curve) {
	registry = append(registry, &Group{
		ID: id, P: p, A: a, B: b, Gx: gx, Gy: gy, N: n,
		PBits: p.BitLen(), NBits: n.BitLen(), Curve: c,
	})
}

func registerBrainpool(id ID, p, a, b, gx, gy, n string) {
	P, A, B, Gx, Gy, N := must(p), must(a), must(b), must(gx), must(gy), must(n)
	register(id, P, A, B, Gx, Gy, N, newGenericCurve(string(id), P, A, B, Gx, Gy, N))
}

func init() {
	for _, nc := range []struct {
		id ID
		c  elliptic.Curve
	}{
		{SECP224R1, elliptic.P224()},
		{SECP256R1, elliptic.P256()},
		{SECP384R1, elliptic.P384()},
		{SECP521R1, elliptic.P521()},
	} {
		p := nc.c.Params()
		register(nc.id, p.P, minus3(p.P), p.B, p.Gx, p.Gy, p.N, nc.c)
	}

	p192 := must("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFFFFFFFFFFFF")
	b192 := must("64210519E59C80E70FA7E9AB72243049FEB8DEECC146B9B1")
	gx192 := must("188DA80EB03090F67CBF20EB43A18800F4FF0AFD82FF1012")
	gy192 := must("07192B95FFC8DA78631011ED6B24CDD573F977A11E794811")
	n192 := must("FFFFFFFFFFFFFFFFFFFFFFFF99DEF836146BC9B1B4D22831")
	register(SECP192R1, p192, minus3(p192), b192, gx192, gy192, n192,
		newGenericCurve("P-192", p192, minus3(p192), b192, gx192, gy192, n192))

	registerBrainpool(BP256R1,
		"A9FB57DBA1EEA9BC3E660A909D838D726E3BF623D52620282013481D1F6E5377",
		"7D5A0975FC2C3057EEF67530417AFFE7FB8055C126DC5C6CE94A4B44F330B5D9",
		"26DC5C6CE94A4B44F330B5D9BBD77CBF958416295CF7E1CE6BCCDC18FF8C07B6",
		"8BD2AEB9CB7E57CB2C4B482FFC81B7AFB9DE27E1E3BD23C23A4453BD9ACE3262",
		"547EF835C3DAC4FD97F8461A14611DC9C27745132DED8E545C1D54C72F046997",
		"A9FB57DBA1EEA9BC3E660A909D838D718C397AA3B561A6F7901E0E82974856A7")
	registerBrainpool(BP384R1,
		"8CB91E82A3386D280F5D6F7E50E641DF152F7109ED5456B412B1DA197FB71123ACD3A729901D1A71874700133107EC53",
		"7BC382C63D8C150C3C72080ACE05AFA0C2BEA28E4FB22787139165EFBA91F90F8AA5814A503AD4EB04A8C7DD22CE2826",
		"04A8C7DD22CE28268B39B55416F0447C2FB77DE107DCD2A62E880EA53EEB62D57CB4390295DBC9943AB78696FA504C11",
		"1D1C64F068CF45FFA2A63A81B7C13F6B8847A3E77EF14FE3DB7FCAFE0CBD10E8E826E03436D646AAEF87B2E247D4AF1E",
		"8ABE1D7520F9C2A45CB1EB8E95CFD55262B70B29FEEC5864E19C054FF99129280E4646217791811142820341263C5315",
		"8CB91E82A3386D280F5D6F7E50E641DF152F7109ED5456B31F166E6CAC0425A7CF3AB6AF6B7FC3103B883202E9046565")
	registerBrainpool(BP512R1,
		"AADD9DB8DBE9C48B3FD4E6AE33C9FC07CB308DB3B3C9D20ED6639CCA703308717D4D9B009BC66842AECDA12AE6A380E62881FF2F2D82C68528AA6056583A48F3",
		"7830A3318B603B89E2327145AC234CC594CBDD8D3DF91610A83441CAEA9863BC2DED5D5AA8253AA10A2EF1C98B9AC8B57F1117A72BF2C7B9E7C1AC4D77FC94CA",
		"3DF91610A83441CAEA9863BC2DED5D5AA8253AA10A2EF1C98B9AC8B57F1117A72BF2C7B9E7C1AC4D77FC94CADC083E67984050B75EBAE5DD2809BD638016F723",
		"81AEE4BDD82ED9645A21322E9C4C6A9385ED9F70B5D916C1B43B62EEF4D0098EFF3B1F78E2D0D48D50D1687B93B97D5F7C6D5047406A5E688B352209BCB9F822",
		"7DDE385D566332ECC0EABFA9CF7822FDF209F70024A57B1AA000C55B881F8111B2DCDE494A5F485E5BCA4BD88A2763AED1CA2B2FA8F0540678CD1E0F3AD80892",
		"AADD9DB8DBE9C48B3FD4E6AE33C9FC07CB308DB3B3C9D20ED6639CCA70330870553E5C414CA92619418661197FAC10471DB1D381085DDADDB58796829CA90069")

	sm2 := sm2curve.New()
	sp := sm2.Params()
	register(SM2P256, sp.P, minus3(sp.P), sp.B, sp.Gx, sp.Gy, sp.N, sm2)
}

// All returns the compiled curve registry, in the fixed declaration order
// resolveECParams walks for a SpecifiedECDomain structural match.
func All() []*Group { return registry }

// ByID returns the registry entry for id, or nil if id is unknown.
func ByID(id ID) *Group {
	for _, g := range registry {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// DecompressY recovers a compressed SEC1 point's Y coordinate from X and
// the requested parity bit. Valid only over fields where p ≡ 3 (mod 4),
// true of every curve in this registry except P-224 (p ≡ 1 mod 4), for
// which it reports false; crypto/elliptic's own
// UnmarshalCompressed cannot be reused here because it assumes a = -3,
// which does not hold for the Brainpool curves.
func DecompressY(grp *Group, x *big.Int, parity uint) (*big.Int, bool) {
	if x.Sign() < 0 || x.Cmp(grp.P) >= 0 {
		return nil, false
	}
	if new(big.Int).Mod(grp.P, big.NewInt(4)).Int64() != 3 {
		return nil, false
	}
	rhs := new(big.Int).Exp(x, big.NewInt(3), grp.P)
	ax := new(big.Int).Mul(grp.A, x)
	ax.Mod(ax, grp.P)
	rhs.Add(rhs, ax)
	rhs.Add(rhs, grp.B)
	rhs.Mod(rhs, grp.P)

	exp := new(big.Int).Add(grp.P, big.NewInt(1))
	exp.Rsh(exp, 2)
	y := new(big.Int).Exp(rhs, exp, grp.P)

	check := new(big.Int).Mul(y, y)
	check.Mod(check, grp.P)
	if check.Cmp(rhs) != 0 {
		return nil, false
	}
	if y.Bit(0) != parity {
		y.Sub(grp.P, y)
	}
	return y, true
}
