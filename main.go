package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/indexbar/indexbar/internal/cache"
	"github.com/indexbar/indexbar/internal/config"
	"github.com/indexbar/indexbar/internal/freshness"
	"github.com/indexbar/indexbar/internal/logging"
	"github.com/indexbar/indexbar/internal/market"
	"github.com/indexbar/indexbar/internal/quote"
	"github.com/indexbar/indexbar/internal/version"
)

// cliOptions 汇总 CLI 标志解析后的结果，便于在测试中注入。
type cliOptions struct {
	configPath  string
	checkOnly   bool
	showVersion bool
}

var (
	stdOut io.Writer = os.Stdout
	stdErr io.Writer = os.Stderr
)

// clock 与 newSource 可在测试中替换，避免依赖真实时间与网络。
var clock freshness.Clock = freshness.SystemClock{}

var newSource = func(cfg *config.Config) market.Source {
	return market.NewHTTPSource(market.NewUpstreamClient(cfg), cfg.Endpoint)
}

func main() {
	opts, err := parseCLIFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(stdErr, err.Error())
		os.Exit(2)
	}
	os.Exit(run(opts))
}

// run 根据解析到的 CLI 选项执行取数流程，并返回退出码，方便测试。
func run(opts cliOptions) int {
	if opts.showVersion {
		printVersion()
		return 0
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(stdErr, "加载配置失败: %v\n", err)
		return 1
	}

	logger, err := logging.InitLogger(*cfg)
	if err != nil {
		fmt.Fprintf(stdErr, "初始化日志失败: %v\n", err)
		return 1
	}

	if opts.checkOnly {
		fields := logging.BaseFields("check_config", opts.configPath)
		fields["cache_path"] = cfg.CachePath
		fields["symbol"] = cfg.Symbol
		fields["result"] = "ok"
		logger.WithFields(fields).Info("配置校验通过")
		return 0
	}

	store, err := cache.NewStore(cfg.CachePath)
	if err != nil {
		fmt.Fprintf(stdErr, "初始化缓存失败: %v\n", err)
		return 1
	}

	svc, err := quote.NewService(quote.Options{
		Store:  store,
		Source: newSource(cfg),
		Clock:  clock,
		Policy: freshness.NewPolicy(),
		Logger: logger,
	})
	if err != nil {
		fmt.Fprintf(stdErr, "构建取数服务失败: %v\n", err)
		return 1
	}

	fields := logging.BaseFields("refresh", opts.configPath)
	fields["version"] = version.Full()
	logger.WithFields(fields).Debug("开始刷新指数")

	line, err := svc.Current(context.Background(), cfg.Symbol, cfg.ClosedMarker)
	if err != nil {
		logger.WithError(err).WithFields(logrus.Fields{"action": "refresh", "invocation": logging.InvocationID()}).Error("refresh_failed")
		fmt.Fprintf(stdErr, "获取指数失败: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdOut, line)
	return 0
}

// parseCLIFlags 解析 CLI 参数，并结合环境变量计算最终的配置路径。
func parseCLIFlags(args []string) (cliOptions, error) {
	fs := flag.NewFlagSet("indexbar", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		configFlag string
		checkOnly  bool
		showVer    bool
	)

	fs.StringVar(&configFlag, "config", "", "配置文件路径（可选，可被 INDEXBAR_CONFIG 指定）")
	fs.BoolVar(&checkOnly, "check-config", false, "仅校验配置后退出")
	fs.BoolVar(&showVer, "version", false, "显示版本信息")

	if err := fs.Parse(args); err != nil {
		return cliOptions{}, fmt.Errorf("解析参数失败: %w", err)
	}

	path := os.Getenv("INDEXBAR_CONFIG")
	if configFlag != "" {
		path = configFlag
	}

	return cliOptions{
		configPath:  path,
		checkOnly:   checkOnly,
		showVersion: showVer,
	}, nil
}

// printVersion 输出注入的版本 + 提交信息。
func printVersion() {
	fmt.Fprintln(stdOut, version.Full())
}
