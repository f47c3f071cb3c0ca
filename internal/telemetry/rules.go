// ABOUTME: Static relevance table linking multilingual trigger phrases to telemetry sections
// ABOUTME: Table order is irrelevant to scoring; Priority carries the weight explicitly

package telemetry

// Section names a part of a Snapshot.
type Section string

const (
	SectionCPU     Section = "cpu"
	SectionMemory  Section = "memory"
	SectionDisk    Section = "disk"
	SectionNetwork Section = "network"
	SectionErrors  Section = "errors"
	SectionDocker  Section = "docker"
	SectionGit     Section = "git"
)

// Rule makes Keys worth surfacing when any of Keywords appears in a prompt.
// Keywords are stored lower-case.
type Rule struct {
	Keywords []string
	Keys     []Section
	Priority int
}

// Rules is the default relevance table.
var Rules = []Rule{
	{
		Keywords: []string{"cpu", "cpu load", "high load", "load average", "slow", "freeze", "running processes", "느려", "프로세스", "遅い", "プロセス", "卡", "进程", "lento", "proceso"},
		Keys:     []Section{SectionCPU},
		Priority: 3,
	},
	{
		Keywords: []string{"memory", "oom-kill", "oom kill", "leak", "swap", "메모리", "メモリ", "内存", "memoria"},
		Keys:     []Section{SectionMemory},
		Priority: 3,
	},
	{
		Keywords: []string{"disk", "storage", "disk space", "no space left", "volume", "디스크", "용량", "ディスク", "容量", "磁盘", "disco duro", "disco lleno", "espacio en disco"},
		Keys:     []Section{SectionDisk},
		Priority: 3,
	},
	{
		Keywords: []string{"error", "crash", "fail", "exception", "panic", "에러", "오류", "エラー", "错误", "崩溃", "fallo"},
		Keys:     []Section{SectionErrors},
		Priority: 3,
	},
	{
		Keywords: []string{"listening port", "open port", "port in use", "port number", "which port", "network", "connection", "listening", "localhost", "포트", "네트워크", "ポート", "ネットワーク", "端口", "网络", "puerto"},
		Keys:     []Section{SectionNetwork},
		Priority: 2,
	},
	{
		Keywords: []string{"docker", "container", "docker compose", "컨테이너", "コンテナ", "容器", "contenedor"},
		Keys:     []Section{SectionDocker},
		Priority: 2,
	},
	{
		Keywords: []string{"git status", "git branch", "git repo", "git log", "git diff", "branch", "commit", "merge", "브랜치", "커밋", "ブランチ", "コミット", "分支", "提交", "rama git", "rama actual"},
		Keys:     []Section{SectionGit},
		Priority: 2,
	},
	{
		Keywords: []string{"performance", "bottleneck", "성능", "パフォーマンス", "性能", "rendimiento"},
		Keys:     []Section{SectionCPU, SectionMemory},
		Priority: 1,
	},
	{
		Keywords: []string{"deploy", "server", "배포", "서버", "デプロイ", "サーバー", "部署", "服务器", "desplegar", "servidor"},
		Keys:     []Section{SectionDocker, SectionNetwork, SectionGit},
		Priority: 1,
	},
}
