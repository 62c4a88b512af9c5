// Command pkinfo reads a PEM or DER private/public key from a file or
// stdin and prints its algorithm, size, and (for EC) curve name.
package main

import (
	"encoding/pem"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dromara/pkparse/crypto/pk"
)

func main() {
	path := flag.String("in", "", "path to a PEM or DER key file (default: stdin)")
	specifiedDomain := flag.Bool("allow-specified-domain", true, "allow SpecifiedECDomain EC parameters")
	public := flag.Bool("public", false, "parse as a SubjectPublicKeyInfo instead of a private key")
	flag.Parse()

	data, err := readInput(*path)
	if err != nil {
		log.Fatalf("pkinfo: %v", err)
	}

	opts := &pk.Options{AllowSpecifiedDomain: *specifiedDomain, ZeroizeOnFailure: true}

	var ctx *pk.PKContext
	if *public {
		if block, _ := pem.Decode(data); block != nil {
			data = block.Bytes
		}
		ctx, err = pk.ParseSubjectPublicKeyInfo(data, opts)
	} else {
		ctx, err = pk.ParseKey(data, opts)
	}
	if err != nil {
		log.Fatalf("pkinfo: %v", err)
	}

	describe(ctx, *public)
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func describe(ctx *pk.PKContext, public bool) {
	switch ctx.Algorithm {
	case pk.TagRSA:
		kind := "private"
		if public {
			kind = "public"
		}
		fmt.Printf("algorithm: RSA (%s)\n", kind)
		if pub := ctx.RSA; pub != nil && pub.N != nil {
			fmt.Printf("modulus bits: %d\n", pub.N.BitLen())
		}
	case pk.TagECKey, pk.TagECKeyDH:
		kind := "private"
		if public || ctx.EC == nil || ctx.EC.D == nil {
			kind = "public"
		}
		fmt.Printf("algorithm: EC (%s)\n", kind)
		if ctx.EC != nil && ctx.EC.Group != nil {
			fmt.Printf("curve: %s\n", ctx.EC.Group.ID)
		}
	default:
		fmt.Println("algorithm: unknown")
	}
}
