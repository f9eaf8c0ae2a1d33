// Package nlp 提供文本归一化：把视频标题/描述的原始自由文本
// 转成规范化的关键词序列，供索引与相似度计算使用。
package nlp

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizer 是文本归一化器：进程级只读配置对象，构造后不再变更，
// 可被任意并发使用。Normalize 为纯函数：确定性、无副作用、永不失败
// （空输入或全被剥离的输入返回空序列）。
type Normalizer struct {
	stopwords map[string]struct{}

	// 正则按流水线顺序编译一次
	reEmoji       *regexp.Regexp
	reBracket     *regexp.Regexp
	reURL         *regexp.Regexp
	reHashtag     *regexp.Regexp
	reElision     *regexp.Regexp
	rePunct       *regexp.Regexp
	reHyphenSpace *regexp.Regexp
	reNumber      *regexp.Regexp
	reSpaces      *regexp.Regexp

	// 去除变音符号（NFD 分解后剥离 Mn 组合标记）
	foldAccents transform.Transformer
}

// Option 配置 Normalizer 构造参数。
type Option func(*options)

type options struct {
	stopwords []string
}

// WithStopwords 替换默认的英法停用词表。词表必须是小写，
// 停用词匹配发生在小写化之后，是大小写敏感的精确匹配。
func WithStopwords(words []string) Option {
	return func(o *options) {
		o.stopwords = words
	}
}

// New 构造 Normalizer。默认使用内置的英文+法文停用词表。
func New(opts ...Option) *Normalizer {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	words := o.stopwords
	if words == nil {
		words = make([]string, 0, len(stopwordsEn)+len(stopwordsFr))
		words = append(words, stopwordsEn...)
		words = append(words, stopwordsFr...)
	}
	stopwords := make(map[string]struct{}, len(words))
	for _, w := range words {
		stopwords[w] = struct{}{}
	}

	return &Normalizer{
		stopwords: stopwords,

		// RE2 不支持 \p{Emoji}，按 Unicode 区块显式列举常用 emoji 及其修饰符
		reEmoji: regexp.MustCompile(`[\x{1F1E6}-\x{1F1FF}\x{1F300}-\x{1F5FF}\x{1F600}-\x{1F64F}\x{1F680}-\x{1F6FF}\x{1F900}-\x{1F9FF}\x{1FA70}-\x{1FAFF}\x{2190}-\x{21FF}\x{2600}-\x{26FF}\x{2700}-\x{27BF}\x{2B00}-\x{2BFF}\x{FE0F}\x{200D}\x{20E3}]`),

		reBracket: regexp.MustCompile(`[\[\]{}()]`),
		reURL:     regexp.MustCompile(`https?://\S+`),
		reHashtag: regexp.MustCompile(`#\w\w+\s?`),

		// 法语省音：词首的 c' d' l' n' m' t' s' j' 与 qu'
		reElision: regexp.MustCompile(`\b(?:qu|[cdlnmtsj])'`),

		// 固定的标点字符类（引号、破折号、省略号、@ 等）；
		// 与空白相邻的连字符折叠为一个空格，词内连字符保留
		rePunct:       regexp.MustCompile("[.?|\",/#!$%^&*;:{}=_–`~…“’@]"),
		reHyphenSpace: regexp.MustCompile(`\s-|-\s`),

		// 只剥离独立成词的数字序列，不碰字母数字混合 token 内部的数字
		reNumber: regexp.MustCompile(`\b\d+\b`),
		reSpaces: regexp.MustCompile(`\s+`),

		foldAccents: transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
	}
}

// Normalize 将原始文本转为规范化 token 序列。
// 流水线顺序固定（后面的阶段假设前面的已执行）：
//  1. 去 emoji
//  2. 小写化，Unicode 分解并剥离变音符号
//  3. 括号类字符替换为空格
//  4. 去 URL
//  5. 去 hashtag
//  6. 去法语省音
//  7. 去标点；空白相邻的连字符折叠为空格
//  8. 去独立数字 token
//  9. 折叠空白（含换行/制表）并去首尾空格
// 10. 按空格切分，丢弃停用词与空 token
func (n *Normalizer) Normalize(raw string) []string {
	if raw == "" {
		return nil
	}

	text := n.reEmoji.ReplaceAllString(raw, "")

	text = strings.ToLower(text)
	if folded, _, err := transform.String(n.foldAccents, text); err == nil {
		text = folded
	}

	text = n.reBracket.ReplaceAllString(text, " ")
	text = n.reURL.ReplaceAllString(text, "")
	text = n.reHashtag.ReplaceAllString(text, "")
	text = n.reElision.ReplaceAllString(text, "")
	text = n.rePunct.ReplaceAllString(text, "")
	text = n.reHyphenSpace.ReplaceAllString(text, " ")
	text = n.reNumber.ReplaceAllString(text, "")
	text = strings.TrimSpace(n.reSpaces.ReplaceAllString(text, " "))

	if text == "" {
		return nil
	}

	parts := strings.Split(text, " ")
	tokens := make([]string, 0, len(parts))
	for _, tok := range parts {
		if tok == "" {
			continue
		}
		if _, stop := n.stopwords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

// NormalizeJoined 返回以单个空格连接的规范化文本，
// 便于日志输出与需要字符串形态的调用方。
func (n *Normalizer) NormalizeJoined(raw string) string {
	return strings.Join(n.Normalize(raw), " ")
}
