// Package cli provides the command-line interface for the OpenAPI codec.
package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GabrielNunesIT/go-libs/logger"
	"github.com/GabrielNunesIT/openapi-codec/internal/adapters/docfile"
	"github.com/GabrielNunesIT/openapi-codec/internal/adapters/openapi"
	"github.com/GabrielNunesIT/openapi-codec/internal/adapters/renderers"
	"github.com/GabrielNunesIT/openapi-codec/internal/config"
	"github.com/GabrielNunesIT/openapi-codec/internal/domain"
	"github.com/spf13/cobra"
)

// stdio is the path that selects standard input or output.
const stdio = "-"

// Input kinds accepted by the render command.
const (
	inputDocument = "document"
	inputOpenAPI  = "openapi"
)

// CLI holds the command-line interface configuration.
type CLI struct {
	log     logger.ILogger
	cfg     *config.Config
	rootCmd *cobra.Command
}

// ioOptions holds the input and output paths shared by all commands.
type ioOptions struct {
	inputFile  string
	outputFile string
}

type decodeOptions struct {
	ioOptions
	format  string
	baseURL string
}

type renderOptions struct {
	ioOptions
	format    string
	inputKind string
	baseURL   string
}

// New creates a new CLI instance.
func New(log logger.ILogger, cfg *config.Config) *CLI {
	cli := &CLI{
		log: log,
		cfg: cfg,
	}

	cli.rootCmd = &cobra.Command{
		Use:           "openapi-codec",
		Short:         "Convert API documents to and from Swagger 2.0",
		Long:          "A CLI tool that encodes API documents as Swagger 2.0 JSON, decodes Swagger 2.0 back into documents and renders documents as PDF, Word (DOCX) or Confluence pages.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cli.rootCmd.AddCommand(cli.encodeCommand(), cli.decodeCommand(), cli.renderCommand())

	return cli
}

// Execute runs the CLI.
func (c *CLI) Execute() error {
	return c.rootCmd.Execute()
}

func (c *CLI) encodeCommand() *cobra.Command {
	opts := &ioOptions{}

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a document file as Swagger 2.0 JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runEncode(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.inputFile, "input", "i", "", "Path to the document file, - for stdin (required)")
	cmd.Flags().StringVarP(&opts.outputFile, "output", "o", stdio, "Path for the Swagger file, - for stdout")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (c *CLI) decodeCommand() *cobra.Command {
	opts := &decodeOptions{}

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a Swagger 2.0 file (JSON or YAML) into a document file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runDecode(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.inputFile, "input", "i", "", "Path to the Swagger file, - for stdin (required)")
	cmd.Flags().StringVarP(&opts.outputFile, "output", "o", stdio, "Path for the document file, - for stdout")
	cmd.Flags().StringVar(&opts.baseURL, "base-url", "", "URL used to resolve links when the Swagger file has no host")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Document file format: yaml, json (default from configuration)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a document as PDF, Word (DOCX) or Confluence (ADF)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runRender(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.inputFile, "input", "i", "", "Path to the input file, - for stdin (required)")
	cmd.Flags().StringVarP(&opts.outputFile, "output", "o", "", "Path for the output file, - for stdout (required)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "pdf", "Output format: pdf, docx, confluence")
	cmd.Flags().StringVar(&opts.inputKind, "from", inputDocument, "Input kind: document, openapi")
	cmd.Flags().StringVar(&opts.baseURL, "base-url", "", "URL used to resolve links of openapi input without a host")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func (c *CLI) runEncode(cmd *cobra.Command, opts *ioOptions) error {
	doc, err := c.loadDocument(cmd, opts.inputFile)
	if err != nil {
		return err
	}

	codec := openapi.NewCodec(
		openapi.WithIndent(c.cfg.Indent),
		openapi.WithCollisionHandler(func(col openapi.Collision) {
			c.log.Infof("Operation %s %s from %q replaced by %q", strings.ToUpper(col.Method), col.Path, col.Replaced, col.Replacement)
		}),
	)

	content, err := codec.Dump(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	if err := c.writeOutput(cmd, opts.outputFile, ensureNewline(content)); err != nil {
		return err
	}

	c.log.Infof("Encoded %d links as %s", len(doc.Links()), codec.MediaType())

	return nil
}

func (c *CLI) runDecode(cmd *cobra.Command, opts *decodeOptions) error {
	format := opts.format
	if format == "" {
		format = c.cfg.DocumentFormat
	}

	doc, err := c.loadOpenAPI(cmd, opts.inputFile, opts.baseURL)
	if err != nil {
		return err
	}

	content, err := docfile.Write(doc, format, docfile.WithIndent(c.cfg.Indent))
	if err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	if err := c.writeOutput(cmd, opts.outputFile, ensureNewline(content)); err != nil {
		return err
	}

	c.log.Infof("Decoded %d links from %s", len(doc.Links()), opts.inputFile)

	return nil
}

func (c *CLI) runRender(cmd *cobra.Command, opts *renderOptions) error {
	renderer, err := getRenderer(opts.format)
	if err != nil {
		return err
	}

	var doc *domain.Document

	switch strings.ToLower(opts.inputKind) {
	case inputDocument:
		doc, err = c.loadDocument(cmd, opts.inputFile)
	case inputOpenAPI:
		doc, err = c.loadOpenAPI(cmd, opts.inputFile, opts.baseURL)
	default:
		return fmt.Errorf("unsupported input kind: %s (supported: document, openapi)", opts.inputKind)
	}
	if err != nil {
		return err
	}

	c.log.Infof("Rendering %q to %s format...", doc.Title, renderer.Format())

	var buf bytes.Buffer
	if err := renderer.Render(doc, &buf); err != nil {
		return fmt.Errorf("rendering failed: %w", err)
	}

	if err := c.writeOutput(cmd, opts.outputFile, buf.Bytes()); err != nil {
		return err
	}

	c.log.Infof("Successfully created: %s", opts.outputFile)

	return nil
}

func getRenderer(format string) (domain.Renderer, error) {
	switch strings.ToLower(format) {
	case "pdf":
		return renderers.NewPDFRenderer(), nil
	case "docx", "word":
		return renderers.NewDocxRenderer(), nil
	case "confluence", "adf":
		return renderers.NewADFRenderer(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: pdf, docx, confluence)", format)
	}
}

func (c *CLI) loadDocument(cmd *cobra.Command, path string) (*domain.Document, error) {
	data, err := c.readInput(cmd, path)
	if err != nil {
		return nil, err
	}

	doc, err := docfile.Read(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	return doc, nil
}

func (c *CLI) loadOpenAPI(cmd *cobra.Command, path, baseURL string) (*domain.Document, error) {
	data, err := c.readInput(cmd, path)
	if err != nil {
		return nil, err
	}

	data, err = openapi.ToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to read Swagger file: %w", err)
	}

	codec := openapi.NewCodec(
		openapi.WithDefaultScheme(c.cfg.DefaultScheme),
		openapi.WithKeyClashHandler(func(clash openapi.KeyClash) {
			c.log.Infof("Operation %s %s dropped: key %q is taken by a tag group", strings.ToUpper(clash.Method), clash.URL, clash.Key)
		}),
	)

	doc, err := codec.Load(data, baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to load Swagger specification: %w", err)
	}

	return doc, nil
}

func (c *CLI) readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == stdio {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	c.log.Infof("Reading %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	return data, nil
}

func (c *CLI) writeOutput(cmd *cobra.Command, path string, content []byte) error {
	if path == stdio {
		if _, err := cmd.OutOrStdout().Write(content); err != nil {
			return fmt.Errorf("failed to write stdout: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	return nil
}

func ensureNewline(content []byte) []byte {
	if len(content) == 0 || content[len(content)-1] == '\n' {
		return content
	}

	return append(content, '\n')
}
