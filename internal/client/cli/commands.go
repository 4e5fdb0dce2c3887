package cli

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/signly/internal/flagx"
	"github.com/dmitrijs2005/signly/internal/netx"
	pb "github.com/dmitrijs2005/signly/internal/proto"
	"github.com/dmitrijs2005/signly/internal/server/auth"
	"github.com/dmitrijs2005/signly/internal/server/models"
)

func (a *App) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

// parse runs fs over args and checks that every named flag has a value.
func (a *App) parse(fs *flag.FlagSet, args []string, required map[string]*string) error {
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	for name, v := range required {
		if strings.TrimSpace(*v) == "" {
			fmt.Fprintf(a.stderr, "%s: -%s is required\n", fs.Name(), name)
			return errUsage
		}
	}
	return nil
}

type tokenOutput struct {
	AccessToken string    `json:"access_token"`
	Account     string    `json:"account"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func (a *App) token(_ context.Context, args []string) error {
	fs := a.flagSet("token")
	account := fs.String("account", "", "account the token identifies")
	secret := fs.String("secret", "", "server secret key (prompted when omitted)")
	validity := fs.Duration("validity", time.Hour, "token lifetime")
	if err := a.parse(fs, args, map[string]*string{"account": account}); err != nil {
		return err
	}

	key := []byte(*secret)
	if len(key) == 0 {
		var err error
		if key, err = GetSecret(a.stderr, "Enter secret key: "); err != nil {
			return err
		}
	}

	token, err := auth.GenerateToken(models.Identity(*account), key, *validity)
	if err != nil {
		return err
	}
	return a.print(tokenOutput{
		AccessToken: token,
		Account:     *account,
		ExpiresAt:   time.Now().Add(*validity).UTC().Truncate(time.Second),
	})
}

// fileDigest returns the hex sha256 of the file at path.
func fileDigest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

type digestOutput struct {
	File          string `json:"file"`
	ContentDigest string `json:"content_digest"`
}

func (a *App) digest(_ context.Context, args []string) error {
	fs := a.flagSet("digest")
	file := fs.String("file", "", "file to fingerprint")
	if err := a.parse(fs, args, map[string]*string{"file": file}); err != nil {
		return err
	}

	d, err := fileDigest(*file)
	if err != nil {
		return err
	}
	return a.print(digestOutput{File: *file, ContentDigest: d})
}

func (a *App) ping(ctx context.Context, args []string) error {
	if err := a.parse(a.flagSet("ping"), args, nil); err != nil {
		return err
	}
	if err := a.client.Ping(ctx); err != nil {
		return err
	}
	return a.print(&pb.PingResponse{Status: "OK"})
}

func (a *App) create(ctx context.Context, args []string) error {
	fs := a.flagSet("create")
	var signers flagx.StringList
	digest := fs.String("digest", "", "content digest of the document")
	file := fs.String("file", "", "compute the digest from this file")
	title := fs.String("title", "", "document title")
	deadline := fs.String("deadline", "", "signing deadline, ISO-8601 or \"YYYY-MM-DD HH:mm:ss\"")
	id := fs.String("id", "", "document id (servers using supplied ids)")
	deposit := fs.String("deposit", "", "fee deposit in the smallest currency unit")
	feeRef := fs.String("fee-ref", "", "fee payment reference")
	fs.Var(&signers, "signer", "required signer; repeat or comma-separate")
	if err := a.parse(fs, args, map[string]*string{"deadline": deadline}); err != nil {
		return err
	}

	if *file != "" {
		d, err := fileDigest(*file)
		if err != nil {
			return err
		}
		*digest = d
	}
	if *digest == "" {
		fmt.Fprintln(a.stderr, "create: one of -digest or -file is required")
		return errUsage
	}

	doc, err := a.client.CreateDocument(ctx, &pb.CreateDocumentRequest{
		Id:            *id,
		ContentDigest: *digest,
		Title:         *title,
		Deadline:      *deadline,
		Signers:       signers,
		Deposit:       *deposit,
		FeeReference:  *feeRef,
	})
	if err != nil {
		return err
	}
	return a.print(doc)
}

// byID runs one of the single-document calls that only need an id.
func (a *App) byID(ctx context.Context, name string, args []string, call func(context.Context, string) (*pb.Document, error)) error {
	fs := a.flagSet(name)
	id := fs.String("id", "", "document id")
	if err := a.parse(fs, args, map[string]*string{"id": id}); err != nil {
		return err
	}

	doc, err := call(ctx, *id)
	if err != nil {
		return err
	}
	return a.print(doc)
}

func (a *App) get(ctx context.Context, args []string) error {
	return a.byID(ctx, "get", args, a.client.GetDocument)
}

func (a *App) sign(ctx context.Context, args []string) error {
	return a.byID(ctx, "sign", args, a.client.AddSign)
}

func (a *App) cancel(ctx context.Context, args []string) error {
	return a.byID(ctx, "cancel", args, a.client.CancelDocument)
}

func (a *App) delete(ctx context.Context, args []string) error {
	return a.byID(ctx, "delete", args, a.client.DeleteDocument)
}

func (a *App) list(ctx context.Context, args []string) error {
	fs := a.flagSet("list")
	creator := fs.String("creator", "", "creator account (defaults to the token's account)")
	if err := a.parse(fs, args, nil); err != nil {
		return err
	}

	docs, err := a.client.GetDocuments(ctx, *creator)
	if err != nil {
		return err
	}
	return a.print(&pb.GetDocumentsResponse{Documents: docs})
}

func (a *App) extend(ctx context.Context, args []string) error {
	fs := a.flagSet("extend")
	id := fs.String("id", "", "document id")
	deadline := fs.String("deadline", "", "new signing deadline")
	if err := a.parse(fs, args, map[string]*string{"id": id, "deadline": deadline}); err != nil {
		return err
	}

	doc, err := a.client.ExtendDeadline(ctx, *id, *deadline)
	if err != nil {
		return err
	}
	return a.print(doc)
}

type attachmentOutput struct {
	Key         string    `json:"key"`
	URL         string    `json:"url"`
	ExpiresAt   time.Time `json:"expires_at"`
	Transferred int64     `json:"transferred_bytes,omitempty"`
}

// attachment prints a presigned URL. With -file (upload) or -out (download)
// it also performs the transfer.
func (a *App) attachment(ctx context.Context, args []string) error {
	fs := a.flagSet("attachment")
	id := fs.String("id", "", "document id")
	mode := fs.String("mode", "download", "upload or download")
	file := fs.String("file", "", "upload this file")
	out := fs.String("out", "", "save the download to this path")
	if err := a.parse(fs, args, map[string]*string{"id": id}); err != nil {
		return err
	}
	switch {
	case *mode != "upload" && *mode != "download":
		fmt.Fprintf(a.stderr, "attachment: unknown mode %q\n", *mode)
		return errUsage
	case *file != "" && *mode != "upload", *out != "" && *mode != "download":
		fmt.Fprintln(a.stderr, "attachment: -file goes with upload, -out with download")
		return errUsage
	}

	resp, err := a.client.AttachmentURL(ctx, *id, *mode)
	if err != nil {
		return err
	}
	result := attachmentOutput{
		Key:       resp.GetKey(),
		URL:       resp.GetUrl(),
		ExpiresAt: resp.GetExpiresAt().AsTime(),
	}

	switch {
	case *file != "":
		f, err := os.Open(*file)
		if err != nil {
			return err
		}
		defer f.Close()
		st, err := f.Stat()
		if err != nil {
			return err
		}
		if err := netx.PutPresigned(ctx, resp.GetUrl(), f, st.Size()); err != nil {
			return err
		}
		result.Transferred = st.Size()
	case *out != "":
		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		n, err := netx.GetPresigned(ctx, resp.GetUrl(), f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
		result.Transferred = n
	}

	return a.print(result)
}
