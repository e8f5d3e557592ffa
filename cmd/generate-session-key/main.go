// Package main はセッション用のRSA鍵ペアを生成するプロビジョニングツールです。
// 秘密鍵はPKCS#8 PEMで保存し、サーバーの auth.sessionkeypath に指定します。
// 公開鍵はセッションクッキーを発行する側に配布します。
package main

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

func main() {
	outputDir := flag.String("out", ".", "鍵ファイルの出力先ディレクトリ")
	bits := flag.Int("bits", 2048, "RSA鍵長")
	flag.Parse()

	privateKeyPath := filepath.Join(*outputDir, "session_private_key.pem")
	publicKeyPath := filepath.Join(*outputDir, "session_public_key.pem")

	if fileExists(privateKeyPath) || fileExists(publicKeyPath) {
		fmt.Println("セッション鍵は既に存在します。スキップします。")
		return
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "ディレクトリの作成に失敗しました: %v\n", err)
		os.Exit(1)
	}

	privateKey, err := rsa.GenerateKey(rand.Reader, *bits)
	if err != nil {
		fmt.Fprintf(os.Stderr, "RSA鍵ペアの生成に失敗しました: %v\n", err)
		os.Exit(1)
	}

	if err := savePrivateKey(privateKey, privateKeyPath); err != nil {
		fmt.Fprintf(os.Stderr, "秘密鍵の保存に失敗しました: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("秘密鍵を保存しました: %s\n", privateKeyPath)

	if err := savePublicKey(&privateKey.PublicKey, publicKeyPath); err != nil {
		fmt.Fprintf(os.Stderr, "公開鍵の保存に失敗しました: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("公開鍵を保存しました: %s\n", publicKeyPath)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func savePrivateKey(privateKey *rsa.PrivateKey, path string) error {
	der, err := x509.MarshalPKCS8PrivateKey(privateKey)
	if err != nil {
		return err
	}
	block := &pem.Block{
		Type:  "PRIVATE KEY",
		Bytes: der,
	}

	// 秘密鍵ファイルは所有者のみ読み書き可能にする
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	return pem.Encode(file, block)
}

func savePublicKey(publicKey *rsa.PublicKey, path string) error {
	der, err := x509.MarshalPKIXPublicKey(publicKey)
	if err != nil {
		return err
	}
	block := &pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: der,
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	return pem.Encode(file, block)
}
