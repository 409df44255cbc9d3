package profile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	log "github.com/yeisme/jprof/pkg/utils/log"
)

// 行读取缓冲：初始 64KB，单行最大 16MB
// 超长行作为一个整体单元处理：丢弃内容后按非法行对待，可被 SkipInvalid 跳过
const (
	readBufSize = 64 * 1024
	maxLineSize = 16 * 1024 * 1024
)

// Profiler 持有根聚合器并驱动逐行摄取
// 单线程单遍：每行完整吸收后才读下一行，读完全部输入后一次性渲染
type Profiler struct {
	opts    Options
	root    *ValueAggregator
	lines   int
	values  int
	skipped int
}

// NewProfiler 创建一个剖析器
func NewProfiler(opts Options) *Profiler {
	opts = opts.normalize()
	return &Profiler{
		opts: opts,
		root: NewValueAggregator(opts),
	}
}

// Root 返回根聚合器
func (p *Profiler) Root() *ValueAggregator { return p.root }

// Lines 返回所有输入累计读取的行数（含空行与被跳过的行）
func (p *Profiler) Lines() int { return p.lines }

// Values 返回成功吸收的值个数
func (p *Profiler) Values() int { return p.values }

// Skipped 返回因解码失败被跳过的行数
func (p *Profiler) Skipped() int { return p.skipped }

// Add 直接吸收一个已解码的值
func (p *Profiler) Add(v any) {
	p.root.Add(v)
	p.values++
}

// Consume 逐行读取 r，每行解码为一个 JSON 值并吸收
// 空行跳过；解码失败和超长行默认整体报错，SkipInvalid 打开时记一条警告后继续
// 错误与警告中的行号是本次输入内的行号，多文件摄取时各自从 1 开始
func (p *Profiler) Consume(r io.Reader) error {
	br := bufio.NewReaderSize(r, readBufSize)
	lineNo := 0

	for {
		line, tooLong, err := readLine(br)
		if err != nil && err != io.EOF {
			return fmt.Errorf("read input: %w", err)
		}
		atEOF := err == io.EOF
		if atEOF && len(line) == 0 && !tooLong {
			return nil
		}
		lineNo++
		p.lines++

		switch {
		case tooLong:
			if !p.opts.SkipInvalid {
				return fmt.Errorf("line %d: line longer than %d bytes", lineNo, maxLineSize)
			}
			p.skipped++
			log.Warn().Int("line", lineNo).Msg("skipping line longer than the size limit")
		default:
			trimmed := bytes.TrimSpace(line)
			if len(trimmed) == 0 {
				break
			}
			v, derr := decodeLine(trimmed)
			if derr != nil {
				if !p.opts.SkipInvalid {
					return fmt.Errorf("line %d: %w", lineNo, derr)
				}
				p.skipped++
				log.Warn().Int("line", lineNo).Err(derr).Msg("skipping invalid JSON line")
				break
			}
			p.root.Add(v)
			p.values++
		}

		if atEOF {
			return nil
		}
	}
}

// readLine 从 br 读取一行（不含行尾换行符）
// 行长超过 maxLineSize 时丢弃整行剩余内容并返回 tooLong，
// 让调用方把超长行当作一个可跳过的单元而不是中止整个流
func readLine(br *bufio.Reader) (line []byte, tooLong bool, err error) {
	for {
		frag, e := br.ReadSlice('\n')
		if !tooLong {
			if len(line)+len(frag) > maxLineSize {
				tooLong = true
				line = nil
			} else {
				line = append(line, frag...)
			}
		}
		switch e {
		case nil:
			if n := len(line); n > 0 && line[n-1] == '\n' {
				line = line[:n-1]
			}
			return line, tooLong, nil
		case bufio.ErrBufferFull:
			continue
		default:
			return line, tooLong, e
		}
	}
}

// Report 输出最终报告：第一行是根的类型分布，之后是逐路径的树
func (p *Profiler) Report(w io.Writer) error {
	if _, err := fmt.Fprintln(w, p.root.Render()); err != nil {
		return err
	}
	p.root.PrintTree(w, "")
	return nil
}

// decodeLine 解码单行 JSON
// UseNumber 保留数字原文，让整数与浮点走不同的聚合器
func decodeLine(line []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(line))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
