package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// 每个虚拟访客一个独立的 cookie jar，模拟 N 个不同浏览器同时点赞同一条内容
var (
	baseURL  = flag.String("base", "http://localhost:3000", "服务地址")
	kind     = flag.String("kind", "update", "内容类型: comment | review | review_reply | update | update_comment")
	targetID = flag.Int64("id", 1, "内容ID")
	visitors = flag.Int("visitors", 1000, "并发访客数")
	twice    = flag.Bool("unlike", false, "每个访客点赞后再取消一次，预期计数回到初始值")
	parallel = flag.Int("parallel", 0, "同时在途的访客上限，0 表示不限")
)

var likeRoutes = map[string]string{
	"comment":        "/read_chapter/like/%d",
	"review":         "/book1/reviews/like/%d",
	"review_reply":   "/book1/reviews/reply/like/%d",
	"update":         "/update/like/%d",
	"update_comment": "/update_news/like/%d",
}

type likeResult struct {
	Success bool   `json:"success"`
	Likes   int64  `json:"likes"`
	Liked   bool   `json:"liked"`
	Message string `json:"message"`
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 2000
	t.MaxIdleConnsPerHost = 2000
	t.MaxConnsPerHost = 2000
	return t
}

func main() {
	flag.Parse()

	route, ok := likeRoutes[*kind]
	if !ok {
		fmt.Printf("未知类型: %s\n", *kind)
		return
	}
	likeURL := *baseURL + fmt.Sprintf(route, *targetID)
	transport := newTransport()

	before, err := readLikes(&http.Client{Transport: transport, Timeout: 10 * time.Second})
	if err != nil {
		fmt.Printf("读取初始计数失败: %v\n", err)
		return
	}

	fmt.Printf("开始压测：%d 个访客同时点赞 %s#%d (初始计数 %d)...\n", *visitors, *kind, *targetID, before)

	var pool errgroup.Group
	if *parallel > 0 {
		pool.SetLimit(*parallel)
	}
	var okCount, failCount int64
	start := time.Now()

	// 单个访客失败只计数，不中断其他访客
	for i := 0; i < *visitors; i++ {
		pool.Go(func() error {
			jar, _ := cookiejar.New(nil)
			client := &http.Client{Transport: transport, Jar: jar, Timeout: 10 * time.Second}

			clicks := 1
			if *twice {
				clicks = 2
			}
			for c := 0; c < clicks; c++ {
				if _, err := toggle(client, likeURL); err != nil {
					atomic.AddInt64(&failCount, 1)
					return nil
				}
			}
			atomic.AddInt64(&okCount, 1)
			return nil
		})
	}

	_ = pool.Wait()
	duration := time.Since(start)

	after, err := readLikes(&http.Client{Transport: transport, Timeout: 10 * time.Second})
	if err != nil {
		fmt.Printf("读取最终计数失败: %v\n", err)
		return
	}

	expected := before + okCount
	if *twice {
		expected = before
	}

	fmt.Println("--------------------------------------------------")
	fmt.Printf("压测结束，耗时: %v\n", duration)
	fmt.Printf("访客数: %d, 成功: %d, 失败: %d\n", *visitors, okCount, failCount)
	fmt.Printf("QPS: %.2f\n", float64(*visitors)/duration.Seconds())
	fmt.Printf("最终计数: %d (预期: %d)\n", after, expected)
	if after == expected {
		fmt.Println("结果: 计数一致")
	} else {
		fmt.Println("结果: 计数不一致，存在丢失更新")
	}
	fmt.Println("--------------------------------------------------")
}

func toggle(client *http.Client, url string) (*likeResult, error) {
	resp, err := client.Post(url, "application/json", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var res likeResult
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK || !res.Success {
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, res.Message)
	}
	return &res, nil
}

func readLikes(client *http.Client) (int64, error) {
	url := fmt.Sprintf("%s/reactions/%s/%d", *baseURL, *kind, *targetID)
	resp, err := client.Get(url)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	var res likeResult
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return 0, err
	}
	if !res.Success {
		return 0, fmt.Errorf("status %d: %s", resp.StatusCode, res.Message)
	}
	return res.Likes, nil
}
